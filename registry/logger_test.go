package registry

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// All methods are safe no-ops.
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")

	assert.Equal(t, NopLogger{}, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("debug message", "key", "value")
	assert.Contains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	logger.With("component", "registry").Info("info message")
	assert.Contains(t, buf.String(), "component=registry")

	t.Run("nil logger falls back to default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		require.NotNil(t, adapter)
	})
}

func TestRegistry_LogsGeneration(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	r := newRegistry(t, WithLogger(NewSlogAdapter(slog.New(handler))))
	r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)

	assert.Contains(t, buf.String(), "generating schema")

	// Cache hits do not regenerate or relog.
	buf.Reset()
	r.GetOrCreateSchema(reflect.TypeOf(Widget{}), nil)
	assert.Empty(t, buf.String())
}
