package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"xwing-inventory/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, build func(context.Context, Inputs, reconcile.Options) (*Report, error)) (*fiber.App, *Service) {
	app := fiber.New()
	svc := NewService(Inputs{}, reconcile.Options{}, time.Minute, zap.NewNop())
	svc.build = build
	NewFeature(svc).Load(app)
	return app, svc
}

func staticBuild(t *testing.T, calls *atomic.Int32) func(context.Context, Inputs, reconcile.Options) (*Report, error) {
	rep := testReport(t)
	return func(context.Context, Inputs, reconcile.Options) (*Report, error) {
		calls.Add(1)
		return rep, nil
	}
}

func decodeBody(t *testing.T, app *fiber.App, method, target string, v any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestHandleRecords(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	var body Records
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory", &body))
	require.Len(t, body.Ships, 1)
	assert.Equal(t, "t70xwing", body.Ships[0].XWS)

	// A second request is served from the cache.
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory", &body))
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandleRecordsBuildError(t *testing.T) {
	app, _ := setupTestApp(t, func(context.Context, Inputs, reconcile.Options) (*Report, error) {
		return nil, errors.New("failed to load expansions.json")
	})

	var body map[string]string
	assert.Equal(t, 500, decodeBody(t, app, "GET", "/inventory", &body))
	assert.Contains(t, body["error"], "expansions.json")
}

func TestHandleDiagnostics(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	var body struct {
		Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
		Summary     Summary                `json:"summary"`
	}
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory/diagnostics", &body))
	require.Len(t, body.Diagnostics, 2)
	assert.Equal(t, reconcile.CardNotFound, body.Diagnostics[1].Kind)
	assert.Equal(t, 1, body.Summary.Ships)
}

func TestHandleExpansions(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	var owned, all []ExpansionRow
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory/expansions", &owned))
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory/expansions?all=true", &all))
	assert.Len(t, owned, 2)
	assert.Len(t, all, 4)
}

func TestHandleSources(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	var body struct {
		Count   uint32         `json:"count"`
		Sources []SourceDetail `json:"sources"`
	}
	assert.Equal(t, 200, decodeBody(t, app, "GET", "/inventory/sources/ship/t70xwing", &body))
	assert.Equal(t, uint32(2), body.Count)
	assert.Len(t, body.Sources, 2)

	assert.Equal(t, 400, decodeBody(t, app, "GET", "/inventory/sources/starship/t70xwing", nil))
}

func TestHandleWorkbook(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/workbook", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), WorkbookFilename)
}

func TestHandleRefresh(t *testing.T) {
	var calls atomic.Int32
	app, _ := setupTestApp(t, staticBuild(t, &calls))

	decodeBody(t, app, "GET", "/inventory", nil)
	assert.Equal(t, 200, decodeBody(t, app, "POST", "/inventory/refresh", nil))
	decodeBody(t, app, "GET", "/inventory", nil)
	assert.Equal(t, int32(2), calls.Load())
}
