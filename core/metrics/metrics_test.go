package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"msforge/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveDiff(t *testing.T) {
	m := metrics.New()
	m.ObserveDiff(metrics.ResultEqual, 10*time.Millisecond)
	m.ObserveDiff(metrics.ResultDifferent, 20*time.Millisecond)
	m.ObserveDiff(metrics.ResultDifferent, 30*time.Millisecond)
	m.ObserveDiff(metrics.ResultError, 0)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	series := make(map[string]int)
	for _, f := range families {
		series[f.GetName()] = len(f.GetMetric())
	}
	assert.Equal(t, 3, series["msforge_diff_total"], "one series per result label")
	assert.Equal(t, 1, series["msforge_diff_duration_seconds"])
}

func TestObserveDiff_Nil(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.ObserveDiff(metrics.ResultEqual, time.Second) })
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveDiff(metrics.ResultEqual, time.Millisecond)

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `msforge_diff_total{result="equal"} 1`)
}
