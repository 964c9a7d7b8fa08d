package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", FormatJSON, &buf)
	log.Debug().Int("day", 5).Msg("solved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "solved", line["message"])
	assert.EqualValues(t, 5, line["day"])
	assert.Contains(t, line, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", FormatConsole, &buf)
	log.Info().Str("label", "xmas_count").Msg("answer")

	assert.Contains(t, buf.String(), "answer")
	assert.Contains(t, buf.String(), "label=xmas_count")
}

func TestNew_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", FormatJSON, &buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
