package logx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	l, err := New("production", "WARN")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_Local(t *testing.T) {
	l, err := New("local", "debug")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	require.NotNil(t, L())
}
