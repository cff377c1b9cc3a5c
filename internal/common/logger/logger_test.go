package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Level: "debug", JSON: true, Output: &buf})
	require.NoError(t, err)

	log.Debug().Str("room", "1234").Msg("saved")

	assert.Contains(t, buf.String(), `"room":"1234"`)
	assert.Contains(t, buf.String(), `"message":"saved"`)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Level: "warn", JSON: true, Output: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}
