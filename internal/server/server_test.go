package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/accommodation"
	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const indexPage = `<!DOCTYPE html><html><head><title>Home</title></head><body><h1>Welcome</h1><a href="/jobs">Jobs</a></body></html>`

type fixture struct {
	store   *settings.Store
	handler http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(indexPage), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "guide.html"), []byte(indexPage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("plain"), 0o644))

	store := settings.NewStore(settings.Defaults())
	ch := chrome.NewController(store, dom.New(), nil, nil)
	t.Cleanup(ch.Close)

	srv := New(Options{
		Store:    store,
		Profiles: profiles.NewController(store, nil),
		Chrome:   ch,
		Root:     root,
		Locale:   "en",
	})
	return fixture{store: store, handler: srv.Routes()}
}

func (f fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeTree(t *testing.T, rec *httptest.ResponseRecorder) settings.Tree {
	t.Helper()
	var tree settings.Tree
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
	return tree
}

func TestHealthAndRequestID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "client-id")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get("X-Request-ID"))
}

func TestGetSettingsUsesBooleanProfileMap(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, false, raw["profiles"]["adhd"])
	assert.Equal(t, "right", raw["widget"]["position"])
}

func TestPatchSetting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{name: "enum", target: "/api/settings/colors/contrast", body: `{"value":"dark"}`, status: http.StatusOK},
		{name: "bool", target: "/api/settings/content/readableFont", body: `{"value":true}`, status: http.StatusOK},
		{name: "out of set", target: "/api/settings/colors/contrast", body: `{"value":"neon"}`, status: http.StatusUnprocessableEntity},
		{name: "wrong type", target: "/api/settings/content/readableFont", body: `{"value":"yes"}`, status: http.StatusUnprocessableEntity},
		{name: "unknown field", target: "/api/settings/colors/sparkle", body: `{"value":true}`, status: http.StatusNotFound},
		{name: "bad body", target: "/api/settings/colors/contrast", body: `{`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(t, http.MethodPatch, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestPatchProfileWritesPreset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodPatch, "/api/settings/profiles/visionImpaired", `{"value":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tree := f.store.Get()
	assert.Equal(t, settings.ProfileVisionImpaired, tree.Profiles)
	assert.Equal(t, settings.ContrastHigh, tree.Colors.Contrast)
	assert.True(t, tree.Content.ReadableFont)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPatch, "/api/settings/profiles/sleepy", `{"value":true}`).Code)
}

func TestPutSettingsReplacesTree(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/settings", `{"orientation":{"cursor":"black","readMode":true},"profiles":{"adhd":true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tree := f.store.Get()
	assert.Equal(t, settings.CursorBlack, tree.Orientation.Cursor)
	assert.True(t, tree.Orientation.ReadMode)
	assert.Equal(t, settings.ProfileADHD, tree.Profiles)
	assert.Equal(t, settings.ContrastDefault, tree.Colors.Contrast)

	rec = f.do(t, http.MethodPut, "/api/settings", `{"profiles":{"adhd":true,"seizeSafe":true}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/settings", `{"widget":{"position":"top"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProfilesAndReset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/profiles/visionImpaired", `{"active":true}`).Code)
	rec := f.do(t, http.MethodPost, "/api/profiles/adhd", `{"active":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	tree := decodeTree(t, rec)
	assert.Equal(t, settings.ProfileADHD, tree.Profiles)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/api/profiles/sleepy", `{"active":true}`).Code)

	rec = f.do(t, http.MethodPost, "/api/settings/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, settings.Defaults(), f.store.Get())
}

func TestTogglePosition(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/widget/position/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, settings.PositionLeft, decodeTree(t, rec).Widget.Position)
}

func TestPagesRenderAccommodations(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.SelectContrast(settings.ContrastDark)
	require.NoError(t, f.store.Toggle("content.highlightHover"))

	req := httptest.NewRequest(http.MethodGet, "/pages/", nil)
	req.Header.Set("Accept-Language", "fr")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "#121212")
	assert.Contains(t, body, accommodation.HoverStyleID)
	assert.Contains(t, body, chrome.TriggerID)
	assert.Contains(t, body, "Options d&#39;accessibilité")
	assert.Equal(t, "fr", rec.Header().Get("Content-Language"))
	assert.Equal(t, 1, f.store.ObserverCount(), "only the chrome controller stays subscribed")
}

func TestPagesRejectMissingAndNonHTML(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/pages/docs/guide.html", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/pages/missing.html", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/pages/notes.txt", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/pages/../secret.html", "").Code)
}

func TestMetricsEndpointCountsRoutes(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.do(t, http.MethodGet, "/api/settings", "")

	rec := f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `accommodate_http_requests_total{route="/api/settings",status="200"} 1`)
}
