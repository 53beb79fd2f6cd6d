package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := catalog.New(filepath.Join("testdata", "apps"))
	srv := httptest.NewServer(server.New(cat, "localhost:0").Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSheetRoutes(t *testing.T) {
	srv := testServer(t)

	t.Run("DefaultPlatform", func(t *testing.T) {
		code, body := get(t, srv.URL+"/en/sheet/demo")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "<title>Demo Editor keyboard shortcuts</title>")
		// Default platform is mac.
		assert.Contains(t, body, `<span class="key">⌘</span>`)
	})

	t.Run("HTMLSuffixAlias", func(t *testing.T) {
		code, body := get(t, srv.URL+"/en/sheet/demo.html")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "Demo Editor")
	})

	t.Run("ExplicitPlatform", func(t *testing.T) {
		code, body := get(t, srv.URL+"/en/sheet/demo?platform=pc")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `<span class="key">alt</span>`)
	})

	t.Run("UnknownPlatform", func(t *testing.T) {
		code, _ := get(t, srv.URL+"/en/sheet/demo?platform=amiga")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("UnknownApp", func(t *testing.T) {
		code, _ := get(t, srv.URL+"/en/sheet/nope")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestStaticRoutes(t *testing.T) {
	srv := testServer(t)

	t.Run("Stylesheet", func(t *testing.T) {
		code, body := get(t, srv.URL+"/static/style.css")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "span.key")
	})

	t.Run("Logo", func(t *testing.T) {
		code, body := get(t, srv.URL+"/static/apps/en/demo/demo.png")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "png", body)
	})
}
