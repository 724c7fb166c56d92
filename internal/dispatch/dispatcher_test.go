package dispatch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avarouter/internal/query"
	"github.com/vyrodovalexey/avarouter/internal/router"
)

func newStore(t *testing.T, defs map[string]router.Handler) *router.Store {
	t.Helper()
	store := router.NewStore()
	require.NoError(t, store.SetRoutes(defs))
	return store
}

func TestDispatcherMatchedRoute(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"/users/:id": func(_ *http.Request, st *router.State) *router.Response {
			return router.Text(http.StatusOK, "user "+st.Param("id"))
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/users/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user 42", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDispatcherQueryParams(t *testing.T) {
	t.Parallel()

	var seen query.Object
	store := newStore(t, map[string]router.Handler{
		"/search": func(_ *http.Request, st *router.State) *router.Response {
			seen = st.Query
			return router.Text(http.StatusOK, "ok")
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/search?q=go&limit=10&opts[deep]=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "go", seen["q"].Str())
	assert.Equal(t, int64(10), seen["limit"].Int64())
	assert.True(t, seen["opts"].Object()["deep"].Bool())
}

func TestDispatcherDefaultNotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"/known": func(_ *http.Request, _ *router.State) *router.Response {
			return router.Text(http.StatusOK, "ok")
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDispatcherCustomNotFound(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"404": func(_ *http.Request, st *router.State) *router.Response {
			return router.Text(http.StatusNotFound, "gone: "+st.Path)
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "gone: /nowhere", rec.Body.String())
}

func TestDispatcherRequestHook(t *testing.T) {
	t.Parallel()

	var hookPath string
	store := newStore(t, map[string]router.Handler{
		"/": func(_ *http.Request, st *router.State) *router.Response {
			v, _ := st.Get("hooked")
			return router.Text(http.StatusOK, v.(string))
		},
	})
	d := New(store, WithRequestHook(func(_ *http.Request, st *router.State) {
		hookPath = st.Path
		st.Set("hooked", "yes")
	}))

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "/", hookPath)
	assert.Equal(t, "yes", rec.Body.String())
}

func TestDispatcherNilResponse(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"/empty": func(_ *http.Request, _ *router.State) *router.Response {
			return nil
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/empty", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDispatcherResponseHeaders(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"/hdr": func(_ *http.Request, _ *router.State) *router.Response {
			h := http.Header{}
			h.Set("X-Custom", "value")
			h.Add("X-Multi", "a")
			h.Add("X-Multi", "b")
			return &router.Response{Status: http.StatusAccepted, Header: h, Body: []byte("done")}
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/hdr", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "value", rec.Header().Get("X-Custom"))
	assert.Equal(t, []string{"a", "b"}, rec.Header().Values("X-Multi"))
}

func TestDispatcherZeroStatusDefaultsToOK(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]router.Handler{
		"/zero": func(_ *http.Request, _ *router.State) *router.Response {
			return &router.Response{Body: []byte("implicit ok")}
		},
	})
	d := New(store)

	rec := httptest.NewRecorder()
	d.ServeHTTP(rec, httptest.NewRequest("GET", "/zero", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "implicit ok", rec.Body.String())
}
