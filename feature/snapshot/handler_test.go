package snapshot

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"xwing-inventory/core/inventory"
	"xwing-inventory/core/item"
	"xwing-inventory/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticReports struct {
	rep *report.Report
}

func (s *staticReports) Report(context.Context) (*report.Report, error) {
	return s.rep, nil
}

func setupTestApp(t *testing.T) (*fiber.App, *staticReports) {
	reports := &staticReports{rep: &report.Report{Inventory: testInventory()}}
	svc := NewService(setupSQLite(t), reports, zap.NewNop())
	app := fiber.New()
	f := NewFeature(svc)
	require.True(t, f.IsEnabled())
	require.NoError(t, f.Load(app))
	return app, reports
}

func doJSON(t *testing.T, app *fiber.App, method, target string, v any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestFeatureDisabledWithoutDatabase(t *testing.T) {
	assert.False(t, NewFeature(nil).IsEnabled())
}

func TestHandleDiffWithoutSnapshot(t *testing.T) {
	app, _ := setupTestApp(t)
	assert.Equal(t, 404, doJSON(t, app, "GET", "/snapshots/latest/diff", nil))
}

func TestHandleCaptureAndDiff(t *testing.T) {
	app, reports := setupTestApp(t)

	var snap Snapshot
	assert.Equal(t, 201, doJSON(t, app, "POST", "/snapshots?label=before", &snap))
	assert.Equal(t, "before", snap.Label)
	assert.Len(t, snap.ID, 36)

	reports.rep = &report.Report{Inventory: inventory.Inventory{
		item.New(item.Ship, "t70xwing"): 3,
	}}

	var diff struct {
		Snapshot Snapshot `json:"snapshot"`
		Changes  []Change `json:"changes"`
	}
	assert.Equal(t, 200, doJSON(t, app, "GET", "/snapshots/latest/diff", &diff))
	assert.Equal(t, snap.ID, diff.Snapshot.ID)
	assert.Equal(t, []Change{
		{Item: item.New(item.Ship, "t70xwing"), Before: 2, After: 3},
		{Item: item.New(item.Pilot, "poedameron"), Before: 1, After: 0},
	}, diff.Changes)

	var list []Snapshot
	assert.Equal(t, 200, doJSON(t, app, "GET", "/snapshots?limit=5", &list))
	assert.Len(t, list, 1)
}
