package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, Int("n", 3))
	assert.Equal(t, Field{Key: "f", Value: 0.5}, Float64("f", 0.5))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
}

func TestErrField(t *testing.T) {
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
}

func TestZapLoggerEmitsFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core)

	logger.Info("analysis complete",
		String("concept", "aortic stenosis"),
		Int("components", 4),
		Float64("confidence", 0.82),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "analysis complete", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "aortic stenosis", ctx["concept"])
	assert.Equal(t, int64(4), ctx["components"])
	assert.Equal(t, 0.82, ctx["confidence"])
}

func TestWithAndNamed(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core).Named("graph").With(String("domain", "cardiology"))

	logger.Debug("traversal start")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "graph", entries[0].LoggerName)
	assert.Equal(t, "cardiology", entries[0].ContextMap()["domain"])
}

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNopLoggerIsSilentAndChainable(t *testing.T) {
	nop := NewNopLogger()
	nop.Info("ignored")
	assert.Equal(t, nop, nop.With(String("k", "v")))
	assert.Equal(t, nop, nop.Named("child"))
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())

	// nil must not replace the default.
	SetDefault(nil)
	assert.Equal(t, nop, Default())
}

//Personal.AI order the ending
