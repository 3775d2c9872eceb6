package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	infoHandler := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	errHandler := slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError})

	logger := slog.New(NewMultiHandler(infoHandler, errHandler))

	logger.Info("visible to info only")
	logger.Error("visible to both")

	assert.Contains(t, infoBuf.String(), "visible to info only")
	assert.Contains(t, infoBuf.String(), "visible to both")
	assert.NotContains(t, errBuf.String(), "visible to info only")
	assert.Contains(t, errBuf.String(), "visible to both")
}

func TestMultiHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn), "enabled when any handler accepts the level")
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "signalement-api")}))
	logger.Info("hello")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"service":"signalement-api"`)
}
