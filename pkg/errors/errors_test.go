package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConceptNotFound, "concept not found")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeConceptNotFound, err.Code)
	assert.Equal(t, "concept not found", err.Message)
	assert.NotEmpty(t, err.Stack)
	assert.Equal(t, "[GRAPH_001] concept not found", err.Error())
}

func TestErrorWithDetail(t *testing.T) {
	err := New(ErrCodeAnalysisJobNotFound, "job not found").WithDetail("id=42")
	assert.Equal(t, "[ANL_004] job not found: id=42", err.Error())

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("ignored"))
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrCodeCacheError, "failed to read cache")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeCacheError, err.Code)
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, Wrap(nil, ErrCodeCacheError, "no-op"))
}

func TestWrapPreservesCodeWhenUnknown(t *testing.T) {
	inner := New(ErrCodeTextEmpty, "empty input")
	wrapped := Wrap(inner, CodeUnknown, "while correcting")
	assert.Equal(t, ErrCodeTextEmpty, wrapped.Code)
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeConceptNotFound, "missing")
	wrapped := Wrap(inner, ErrCodeGraphQueryFailed, "query failed")

	assert.True(t, IsCode(wrapped, ErrCodeGraphQueryFailed))
	assert.True(t, IsCode(wrapped, ErrCodeConceptNotFound))
	assert.False(t, IsCode(wrapped, ErrCodeCacheError))
	assert.False(t, IsCode(nil, ErrCodeCacheError))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeConceptNotFound, "x")))
	assert.True(t, IsNotFound(New(ErrCodeAnalysisJobNotFound, "x")))
	assert.True(t, IsNotFound(NotFound("x")))
	assert.False(t, IsNotFound(New(ErrCodeInternal, "x")))
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeTextEmpty, GetCode(New(ErrCodeTextEmpty, "empty")))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 404, HTTPStatusForCode(ErrCodeConceptNotFound))
	assert.Equal(t, 400, HTTPStatusForCode(ErrCodeTextEmpty))
	assert.Equal(t, 500, HTTPStatusForCode(ErrorCode("NOPE_999")))

	assert.True(t, IsClientError(ErrCodeCategoryUnknown))
	assert.True(t, IsServerError(ErrCodeValidationPassFailed))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "GRAPH", ModuleForCode(ErrCodeConceptNotFound))
	assert.Equal(t, "TXT", ModuleForCode(ErrCodeTextEmpty))
	assert.Equal(t, "SCORE", ModuleForCode(ErrCodeValidationPassFailed))
}

//Personal.AI order the ending
