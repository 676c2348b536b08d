package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "failed to parse log")
	return entry
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("feed")
	logger.Info().Msg("page loaded")

	entry := decode(t, &buf)
	assert.Equal(t, "feed", entry["cmp"])
	assert.Equal(t, "page loaded", entry["message"])
}

func TestComponentOf(t *testing.T) {
	var buf bytes.Buffer

	logger := ComponentOf(zerolog.New(&buf), "images")
	logger.Debug().Msg("hit")

	assert.Equal(t, "images", decode(t, &buf)["cmp"])
}
