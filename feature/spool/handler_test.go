package spool

import (
	"io"
	"net/http/httptest"
	"testing"

	"spoolq/core/uucp"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	svc, _ := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestHandleScan(t *testing.T) {
	app := setupTestApp(t)

	var sum SiteSummary
	status := doJSON(t, app, "POST", "/sites/alpha/scan", &sum)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alpha", sum.Name)
	assert.Equal(t, uucp.Damaged(1, 0), sum.State)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, sum.Report.Added)

	t.Run("Invalid site", func(t *testing.T) {
		var ghost SiteSummary
		status := doJSON(t, app, "POST", "/sites/ghost/scan", &ghost)
		assert.Equal(t, fiber.StatusOK, status)
		assert.False(t, ghost.Valid)
	})

	t.Run("Unknown site", func(t *testing.T) {
		var body map[string]string
		status := doJSON(t, app, "POST", "/sites/nowhere/scan", &body)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Contains(t, body["error"], "unknown site")
	})
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t)
	doJSON(t, app, "POST", "/sites/beta/scan", nil)

	var sums []SiteSummary
	status := doJSON(t, app, "GET", "/sites", &sums)
	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, sums, 3)
	assert.Equal(t, "beta", sums[1].Name)
	assert.Equal(t, uucp.Clean(1), sums[1].State)

	var one SiteSummary
	status = doJSON(t, app, "GET", "/sites/beta", &one)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, one.News)
}

func TestHandleQueueAndMark(t *testing.T) {
	app := setupTestApp(t)
	doJSON(t, app, "POST", "/sites/alpha/scan", nil)

	var queue struct {
		Site     string       `json:"site"`
		Entities []EntityView `json:"entities"`
	}
	status := doJSON(t, app, "GET", "/sites/alpha/queue", &queue)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alpha", queue.Site)
	assert.Len(t, queue.Entities, 3)

	var view EntityView
	status = doJSON(t, app, "POST", "/sites/alpha/queue/ccc/mark", &view)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, view.Marked)

	status = doJSON(t, app, "POST", "/sites/alpha/queue/bbb/mark", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status = doJSON(t, app, "POST", "/sites/alpha/queue/zzz/mark", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
