package catalog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"guide-sync/feature/catalog/exclusions"
	"guide-sync/feature/catalog/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	svc, _, _ := setupService(t, 0, 1)
	app := fiber.New()
	require.NoError(t, NewFeature(svc, zap.NewNop(), time.Minute).Load(app))
	return app
}

func TestHandleGetReport(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/items", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var report reconcile.Report
	require.NoError(t, json.Unmarshal(body, &report))

	require.Len(t, report.Summaries, 1)
	assert.Equal(t, 1, report.Summaries[0].Mismatched)
	require.Len(t, report.Entities, 1)
	assert.Equal(t, "materials", report.Entities[0].Discrepancies[0].Field)
}

func TestHandleGetReport_UnknownKind(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/weapons", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleListExclusions(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/exclusions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rules []exclusions.Rule
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rules))
	assert.Len(t, rules, len(exclusions.Rules()))
}

func TestNewFeature_DisabledWithoutService(t *testing.T) {
	f := NewFeature(nil, zap.NewNop(), time.Minute)
	assert.False(t, f.IsEnabled())
	assert.Equal(t, "catalog", f.Name())
}
