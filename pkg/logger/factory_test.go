package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totpgate/totpgate/pkg/logger"
)

func TestNewJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "totpgate")),
	)
	log.Info("authenticated", slog.String("attempt_id", "abc"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "authenticated", record["msg"])
	assert.Equal(t, "totpgate", record["service"])
	assert.Equal(t, "abc", record["attempt_id"])
}

func TestNewTextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))
	log.Warn("secret record missing")

	assert.True(t, strings.Contains(buf.String(), "secret record missing"))
	assert.True(t, strings.Contains(buf.String(), "level=WARN"))
}

func TestNewLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)
	log.Info("suppressed")
	log.Debug("suppressed too")
	assert.Zero(t, buf.Len())

	log.Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestWithFormatPanicsOnGarbage(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("yaml")))
	})
}
