package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/pkg/logger"
)

func TestNew_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", App: "kardex-captura", Output: &buf})

	comp := l.Component("localstore")
	comp.Debug().Str("key", "kardex_queue_v1").Msg("guardado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kardex-captura", line["app"])
	assert.Equal(t, "localstore", line["component"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "guardado", line["message"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})
	l.Info().Msg("no")
	assert.Empty(t, buf.String())
	l.Warn().Msg("sí")
	assert.NotEmpty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("WARNING"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("otro"))
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel("trace"))
}
