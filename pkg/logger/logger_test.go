package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "nivel %q", in)
	}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Debug().Msg("oculto")
	l.Info().Str("resource", "categories").Msg("listado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "debe haber exactamente una línea JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "categories", entry["resource"])
	assert.Equal(t, "listado", entry["message"])
	assert.Contains(t, entry, "time")
}
