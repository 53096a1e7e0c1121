package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvid/adminweb/app/controllers"
	"github.com/streamvid/adminweb/internal/pkg/api"
	"github.com/streamvid/adminweb/internal/pkg/router"
)

const packagesBody = `{"packages": [
	{"id": "p1", "name": "Starter", "video_limit": 10, "position": 1, "status": "active", "createdAt": "2024-03-01T10:00:00Z"},
	{"id": "p2", "name": "Premium", "video_limit": null, "position": 2, "status": "inactive", "createdAt": "2024-04-01T10:00:00Z"}
]}`

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/package"):
			fmt.Fprint(w, packagesBody)
		default:
			fmt.Fprint(w, `{"data": []}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newApp(t *testing.T, backendURL string) *fiber.App {
	t.Helper()

	engine := html.New("../../views", ".html")
	engine.AddFunc("money", func(v float64) string { return fmt.Sprintf("%.2f", v) })

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	router.InstallRouter(app)
	controllers.SetApiClient(&api.Client{
		BaseURL:    backendURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	})
	return app
}

func TestPackagesIndexRendersBackendRows(t *testing.T) {
	backend := newBackend(t)
	app := newApp(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.Contains(t, page, "Starter")
	assert.Contains(t, page, "Premium")
	assert.Contains(t, page, "Unlimited")
	assert.Contains(t, page, "Showing 1 to 2 of 2")
}

func TestPackagesSearchFiltersCachedRows(t *testing.T) {
	backend := newBackend(t)
	app := newApp(t, backend.URL)

	mount := httptest.NewRequest(http.MethodGet, "/packages", nil)
	mountResp, err := app.Test(mount, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, mountResp.StatusCode)

	form := url.Values{"name": {"prem"}, "status": {"all"}}
	search := httptest.NewRequest(http.MethodPost, "/packages/search", strings.NewReader(form.Encode()))
	search.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	for _, cookie := range mountResp.Cookies() {
		search.AddCookie(cookie)
	}

	resp, err := app.Test(search, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.Contains(t, page, "Premium")
	assert.NotContains(t, page, "Starter")
	assert.Contains(t, page, "Showing 1 to 1 of 1")
}

func TestPackagesIndexSurvivesBackendOutage(t *testing.T) {
	backend := newBackend(t)
	app := newApp(t, backend.URL)
	backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/packages", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No packages found")
}

func TestSubscriptionPlanOptionsReturnsActivePlansOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"membershipPlans": [
			{"id": "m1", "package_id": "p1", "planName": "monthly", "price": 10, "discount": 1, "finalPrice": 9, "duration": 30, "status": "active"},
			{"id": "m2", "package_id": "p1", "planName": "yearly", "price": 100, "discount": 0, "finalPrice": 100, "duration": 365, "status": "inactive"}
		]}`)
	}))
	defer srv.Close()
	app := newApp(t, srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/subscriptions/plan-options/p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := string(body)

	assert.Contains(t, payload, `"id":"m1"`)
	assert.NotContains(t, payload, `"id":"m2"`)
}
