package logger

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"Warn":    zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}

	for in, want := range cases {
		require.Equal(t, want, parseZapLevel(in), "level %q", in)
	}
}

func TestToHlogLevel(t *testing.T) {
	require.Equal(t, hlog.LevelDebug, toHlogLevel(zapcore.DebugLevel))
	require.Equal(t, hlog.LevelWarn, toHlogLevel(zapcore.WarnLevel))
	require.Equal(t, hlog.LevelInfo, toHlogLevel(zapcore.FatalLevel))
}

func TestComponentBeforeInit(t *testing.T) {
	// Init 之前也不能是 nil
	l := Component("test")
	require.NotNil(t, l)
	l.Info("no-op")
}
