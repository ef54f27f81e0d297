package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf)

	log.Debug("скрытое сообщение")
	log.With("request_id", "abc").Info("Booking confirmed", map[string]interface{}{
		"user_id": "user_1",
		"error":   errors.New("boom"),
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Booking confirmed", entry["message"])
	assert.Equal(t, "user_1", entry["user_id"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "drivesure", entry["service"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":    "debug",
		"WARNING":  "warn",
		"error":    "error",
		"disabled": "disabled",
		"unknown":  "info",
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in).String(), in)
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	log, err := New("info", "json", path)
	require.NoError(t, err)
	log.Info("written to file")

	_, err = New("info", "json", filepath.Join(t.TempDir(), "missing", "dir", "api.log"))
	assert.Error(t, err)
}
