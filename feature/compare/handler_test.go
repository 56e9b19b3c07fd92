package compare

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"msforge/core/database"
	"msforge/core/diff"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	app := fiber.New()
	svc := NewService(testSnapshots(), db, diff.Config{}, nil, zap.NewNop())
	require.NoError(t, svc.Migrate())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func postCompare(t *testing.T, app *fiber.App, body, query string) (int, []byte) {
	req := httptest.NewRequest("POST", "/compare"+query, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestHandleCompare(t *testing.T) {
	app := setupTestApp(t, nil)

	status, body := postCompare(t, app, `{"a":"a.json","b":"b.json"}`, "")
	assert.Equal(t, 200, status)

	var report map[string]any
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, true, report["different"])
	assert.Equal(t, 1.0, report["spectra"])
}

func TestHandleCompare_YAML(t *testing.T) {
	app := setupTestApp(t, nil)

	status, body := postCompare(t, app, `{"a":"a.json","b":"c.json"}`, "?format=yaml")
	assert.Equal(t, 200, status)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal(body, &report))
	assert.Equal(t, false, report["different"])
	assert.Equal(t, "no differences.", report["summary"])
}

func TestHandleCompare_Errors(t *testing.T) {
	app := setupTestApp(t, nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"Malformed", `{`, fiber.StatusBadRequest},
		{"MissingKey", `{"a":"a.json"}`, fiber.StatusBadRequest},
		{"UnknownSnapshot", `{"a":"a.json","b":"nope.json"}`, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postCompare(t, app, tt.body, "")
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestHandleReports(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	app := setupTestApp(t, db)

	status, body := postCompare(t, app, `{"a":"a.json","b":"b.json"}`, "")
	require.Equal(t, 200, status)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/reports?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var list struct {
		Reports []map[string]any `json:"reports"`
		Limit   int              `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list.Reports, 1)
	assert.Equal(t, 5, list.Limit)

	resp, err = app.Test(httptest.NewRequest("GET", "/compare/reports/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/compare/reports/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReports_NoDatabase(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/reports", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
