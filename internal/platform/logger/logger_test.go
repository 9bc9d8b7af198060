package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.Debug("hidden")
	log.Info("check evaluated", "label", "FAKE_LIKELY")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "check evaluated", entry["msg"])
	assert.Equal(t, "FAKE_LIKELY", entry["label"])
}

func TestNewWithWriter_TextAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "WARN", "text")

	log.Info("skipped")
	assert.Empty(t, buf.String())

	log.Warn("reputation table missing")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "reputation table missing")
}
