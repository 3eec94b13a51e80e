package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"), "el nivel no distingue mayúsculas")
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""), "nivel desconocido cae a info")
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNew_IncluyeCampoApp(t *testing.T) {
	l := New(Config{App: "pos-retail-api", Env: "production", Level: "error"})
	assert.NotNil(t, l)
	assert.Equal(t, zerolog.ErrorLevel, l.Zerolog().GetLevel())
}
