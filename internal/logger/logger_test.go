package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "storefront", Level: zerolog.DebugLevel, Output: buf})

	log.Debug().Int("product_id", 3).Msg("cart incremented")

	out := buf.String()
	assert.Contains(t, out, `"service":"storefront"`)
	assert.Contains(t, out, `"product_id":3`)
	assert.Contains(t, out, `"message":"cart incremented"`)
}

func TestNew_levelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "storefront", Level: zerolog.WarnLevel, Output: buf})

	log.Info().Msg("hidden")
	require.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_console(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "storefront", Format: FormatConsole, Output: buf})

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  zerolog.Level
	}{
		{name: "empty: info", value: "", want: zerolog.InfoLevel},
		{name: "invalid: info", value: "loud", want: zerolog.InfoLevel},
		{name: "debug", value: "debug", want: zerolog.DebugLevel},
		{name: "padded upper case", value: "  WARN ", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.value))
		})
	}
}
