package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetupProduction(t *testing.T) {
	require.NoError(t, Setup(false, "projindex", "test"))
	t.Cleanup(func() { Logger = zap.NewNop() })

	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.Same(t, Logger, zap.L())
}

func TestSetupDebug(t *testing.T) {
	require.NoError(t, Setup(true, "projindex", "test"))
	t.Cleanup(func() { Logger = zap.NewNop() })

	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
