package logger_test

import (
	"net/http/httptest"
	"testing"

	"msforge/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		debug bool
	}{
		{"Console", logger.Config{Level: "info", Format: "console"}, false},
		{"JSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Debug", logger.Config{Level: "debug", Format: "console"}, true},
		{"Warn", logger.Config{Level: "warn", Format: "json", Output: "stdout"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud", Format: "json"})
	assert.Error(t, err)
	_, err = logger.New(&logger.Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNew_Warn(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "abc")
		logger.WithRayID(base, c).Info("with")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")
}
