package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/pkg/logger"
)

func TestNew_JSONConExportID(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.WithExportID("abc-123").Info().Str("book", "050100").Msg("libro generado")
	l.Debug().Msg("no se emite por nivel")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "una sola línea JSON")
	assert.Equal(t, "abc-123", entry["export_id"])
	assert.Equal(t, "050100", entry["book"])
	assert.Equal(t, "info", entry["level"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("descartado") })
}
