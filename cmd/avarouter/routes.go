package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vyrodovalexey/avarouter/internal/router"
)

// defaultRoutes returns the built-in route set. Registration order is
// match priority for overlapping templates.
func defaultRoutes() []router.RouteDef {
	return []router.RouteDef{
		{Template: "/", Handler: handleIndex},
		{Template: "/healthz", Handler: handleHealth},
		{Template: "/version", Handler: handleVersion},
		{Template: "/users/:id", Handler: handleUser},
		{Template: "/users/:id/posts/:post", Handler: handleUserPost},
		{Template: router.FallbackTemplate, Handler: handleNotFound},
	}
}

func jsonResponse(status int, v any) *router.Response {
	body, err := json.Marshal(v)
	if err != nil {
		return router.Text(http.StatusInternalServerError, "encoding error")
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return &router.Response{Status: status, Header: h, Body: body}
}

func handleIndex(_ *http.Request, _ *router.State) *router.Response {
	return router.HTML(http.StatusOK, "<html><body><h1>avarouter</h1></body></html>")
}

func handleHealth(_ *http.Request, _ *router.State) *router.Response {
	return jsonResponse(http.StatusOK, map[string]string{"status": "ok"})
}

func handleVersion(_ *http.Request, _ *router.State) *router.Response {
	return jsonResponse(http.StatusOK, map[string]string{
		"version":   version,
		"buildTime": buildTime,
		"gitCommit": gitCommit,
	})
}

func handleUser(_ *http.Request, st *router.State) *router.Response {
	return jsonResponse(http.StatusOK, map[string]string{
		"user": st.Param("id"),
	})
}

func handleUserPost(_ *http.Request, st *router.State) *router.Response {
	return jsonResponse(http.StatusOK, map[string]string{
		"user": st.Param("id"),
		"post": st.Param("post"),
	})
}

func handleNotFound(_ *http.Request, st *router.State) *router.Response {
	return router.HTML(http.StatusNotFound,
		fmt.Sprintf("<html><body><h1>404 Not Found</h1><p>%s</p></body></html>", st.Path))
}
