package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.42, Clamp01(0.42))
	assert.Equal(t, 0.0, Clamp01(0))
	assert.Equal(t, 1.0, Clamp01(1))
}

//Personal.AI order the ending
