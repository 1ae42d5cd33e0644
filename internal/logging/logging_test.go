package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"client-intake-backend/internal/logging"
)

func TestNew_JSONWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(
		logging.WithOutput(&buf),
		logging.WithAttr(slog.String("service", "client-intake")),
	)

	logger.Info("hello", "step", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "client-intake", entry["service"])
	assert.Equal(t, float64(3), entry["step"])
}

func TestWithLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithLevelName("warn"))

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithLevelName_UnknownKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithLevelName("loud"))

	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFormat_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithFormat(logging.FormatText))

	logger.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}
