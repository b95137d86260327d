package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("TRACE")
	require.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := newZapLogger(zapcore.InfoLevel, zapcore.AddSync(buf))

	logger.Debug("hidden")
	logger.Info("renewed", zap.String("label", "alice"))

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"renewed"`)
	require.Contains(t, buf.String(), `"label":"alice"`)
	require.Contains(t, buf.String(), "logutils/logger_test.go")
}

func TestNewZapLoggerWithRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renewal.log")
	logger, err := NewZapLogger("INFO", FileOptions{Filename: path, MaxSize: 1, MaxBackups: 1})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestSetZapLoggerWhileLogging(t *testing.T) {
	defer SetZapLogger(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetZapLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			ZapLogger().Debug("renewing")
		}()
	}
	wg.Wait()
	require.NotNil(t, ZapLogger())
}
