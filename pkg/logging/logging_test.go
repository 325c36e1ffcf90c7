package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateHome := useStateHome(t)

			var console bytes.Buffer
			setup(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(stateHome, "lootifier", "lootifier.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file was not created at %s", logPath)
		})
	}
}

func TestSetupLoggerWritesToFile(t *testing.T) {
	stateHome := useStateHome(t)

	var console bytes.Buffer
	setup(1, &console)
	logger := GetLogger("test")
	logger.Info().Msg("hello from test")

	data, err := os.ReadFile(filepath.Join(stateHome, "lootifier", "lootifier.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, console.String(), "hello from test")
}

func TestGetLogFilePath(t *testing.T) {
	stateHome := useStateHome(t)

	assert.Equal(t, filepath.Join(stateHome, "lootifier", "lootifier.log"), getLogFilePath())
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	done := LogOperationStart(GetLogger("test"), "convert")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"convert"`)
	assert.Contains(t, out, `"duration"`)
}
