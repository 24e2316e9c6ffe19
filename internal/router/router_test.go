package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"employee-directory/internal/cache"
	"employee-directory/internal/database"
	"employee-directory/internal/flash"
	"employee-directory/internal/model"
	"employee-directory/internal/service"
	"employee-directory/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newEcho(t *testing.T, d Deps) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = r
	Setup(e, d)
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := newEcho(t, Deps{DB: &database.FakeDB{}, Cache: &cache.FakeCache{}, Flash: flash.NewStore(false), UploadDir: t.TempDir()})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /live",
		http.MethodGet + " /search",
		http.MethodGet + " /add",
		http.MethodPost + " /add",
		http.MethodGet + " /edit/:id",
		http.MethodPost + " /edit/:id",
		http.MethodPost + " /delete/:id",
		http.MethodGet + " /ping",
		http.MethodGet + " /static/uploads/*",
		http.MethodGet + " /static/*",
	}
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestSearchRequiresXHR(t *testing.T) {
	dir := &service.FakeDirectory{SearchFn: func(context.Context, string) ([]model.Employee, error) {
		return []model.Employee{}, nil
	}}
	e := newEcho(t, Deps{Directory: dir, Flash: flash.NewStore(false)})

	req := httptest.NewRequest(http.MethodGet, "/search?q=a", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	req = httptest.NewRequest(http.MethodGet, "/search?q=a", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"employees":[]}`, rec.Body.String())
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "me.png"), []byte("png"), 0o644))
	e := newEcho(t, Deps{Flash: flash.NewStore(false), UploadDir: dir})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/uploads/me.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "png", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/live.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	require.Contains(t, string(body), "WebSocket")
}
