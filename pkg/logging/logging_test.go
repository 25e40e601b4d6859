package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", JSON: true, Out: &buf})

	log.Info().Msg("hidden")
	log.Warn().Str("value", "1").Msg("shown")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "actd", rec["service"])
	assert.Equal(t, "1", rec["value"])
}
