package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/infrastructure/markdown"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writePost(t *testing.T, dir, slug, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".mdx"), []byte(contents), 0o644))
}

func blogRouter(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	repo := repository.NewFilesystemRepository(dir)
	svc := service.NewBlogService(repo, markdown.NewRenderer())
	h := NewBlogHandler(svc)

	router := gin.New()
	posts := router.Group("/api/v1/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/slugs", h.ListSlugs)
		posts.GET("/:slug", h.GetPost)
	}
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func seedPosts(t *testing.T, dir string) {
	writePost(t, dir, "hello-world", `---
title: "Hello World"
date: "2025-01-15"
excerpt: "The first one"
heroType: "text"
tags:
  - intro
---
# Hello

A short body for the very first post on this site.
`)
	writePost(t, dir, "second-thoughts", `---
title: "Second Thoughts"
date: "2025-02-20"
excerpt: "A follow up"
heroType: "image"
heroAsset: "/img/second.png"
---
More writing, with **emphasis**.
`)
}

func TestListPosts(t *testing.T) {
	dir := t.TempDir()
	seedPosts(t, dir)
	router := blogRouter(t, dir)

	w := get(t, router, "/api/v1/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 2)

	// Newest first.
	assert.Equal(t, "second-thoughts", summaries[0]["slug"])
	assert.Equal(t, "hello-world", summaries[1]["slug"])

	// Summaries carry no body fields.
	_, hasContent := summaries[0]["content"]
	assert.False(t, hasContent)
	_, hasHTML := summaries[0]["content_html"]
	assert.False(t, hasHTML)
}

func TestListPosts_EmptyCollection(t *testing.T) {
	router := blogRouter(t, t.TempDir())

	w := get(t, router, "/api/v1/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "[]", string(env.Data), "empty listing is a JSON array, not null")
}

func TestGetPost(t *testing.T) {
	dir := t.TempDir()
	seedPosts(t, dir)
	router := blogRouter(t, dir)

	w := get(t, router, "/api/v1/posts/hello-world")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "hello-world", post["slug"])
	assert.Equal(t, "Hello World", post["title"])
	assert.Contains(t, post["content"], "# Hello")
	assert.Contains(t, post["content_html"], "<h1 id=\"hello\">Hello</h1>")
	assert.Equal(t, "1 min read", post["reading_time"])
}

func TestGetPost_NotFound(t *testing.T) {
	dir := t.TempDir()
	seedPosts(t, dir)
	router := blogRouter(t, dir)

	w := get(t, router, "/api/v1/posts/no-such-post")

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Post not found", env.Error.Message)
}

func TestListSlugs_NotShadowedByParamRoute(t *testing.T) {
	dir := t.TempDir()
	seedPosts(t, dir)
	router := blogRouter(t, dir)

	w := get(t, router, "/api/v1/posts/slugs")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var slugs []string
	require.NoError(t, json.Unmarshal(env.Data, &slugs))
	assert.Equal(t, []string{"hello-world", "second-thoughts"}, slugs)
}
