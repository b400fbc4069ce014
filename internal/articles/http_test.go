// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-hq/sentra/internal/articles"
)

func newArticleRouter(t *testing.T) chi.Router {
	t.Helper()

	repository := newMemoryRepository()
	handler := articles.NewHandler(articles.NewService(repository, slog.Default()))

	router := chi.NewRouter()
	router.Mount("/articles", handler.Routes())
	return router
}

// createArticle posts a new article and returns its decoded representation.
func createArticle(t *testing.T, router chi.Router, title, content string) map[string]any {
	t.Helper()

	body := `{"title": "` + title + `", "content": "` + content + `"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

/*
TestArticleHandler_Create verifies the 201 envelope and input rejection.
*/
func TestArticleHandler_Create(t *testing.T) {
	router := newArticleRouter(t)

	t.Run("success", func(t *testing.T) {
		data := createArticle(t, router, "Launch post", "We are live.")

		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "Launch post", data["title"])
		assert.Equal(t, "We are live.", data["content"])
	})

	t.Run("validation_failure", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/articles",
			strings.NewReader(`{"title": "", "content": ""}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("malformed_json", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader("{oops")))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestArticleHandler_List verifies the paginated envelope and meta block.
*/
func TestArticleHandler_List(t *testing.T) {
	router := newArticleRouter(t)

	for _, title := range []string{"First", "Second", "Third"} {
		createArticle(t, router, title, "content")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles?page=1&limit=2", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, 1, envelope.Meta.Page)
	assert.Equal(t, 2, envelope.Meta.Limit)
	assert.Equal(t, 3, envelope.Meta.Total)
	assert.Equal(t, 2, envelope.Meta.TotalPages)
}

/*
TestArticleHandler_GetPatchDelete walks a single resource through its
lifecycle: fetch, partial update, delete, and the resulting 404.
*/
func TestArticleHandler_GetPatchDelete(t *testing.T) {
	router := newArticleRouter(t)
	created := createArticle(t, router, "Lifecycle", "v1")
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	t.Run("get", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles/"+id, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Lifecycle")
	})

	t.Run("patch_content_only", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/articles/"+id,
			strings.NewReader(`{"content": "v2"}`)))

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Lifecycle", envelope.Data["title"])
		assert.Equal(t, "v2", envelope.Data["content"])
	})

	t.Run("delete", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/articles/"+id, nil))
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles/"+id, nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unknown_id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles/does-not-exist", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
