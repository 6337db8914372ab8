package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got.Level(), in)
	}

	_, err := parseLevel("verbose")
	require.Error(t, err)
}

// JSON-формат: уровень в верхнем регистре, короткий source
func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, &config.LoggerConfig{Level: "debug", Format: "json"})
	log.Debug("quotes loaded", slog.Int("items", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "DEBUG", rec["level"])
	require.Equal(t, "quotes loaded", rec["msg"])
	require.EqualValues(t, 3, rec["items"])
	require.Regexp(t, `^logger_test\.go:\d+$`, rec["source"])
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, &config.LoggerConfig{Level: "warn", Format: "text"})
	log.Info("hidden")
	require.Zero(t, buf.Len())

	log.Warn("shown")
	require.Contains(t, buf.String(), "level=WARN")
}
