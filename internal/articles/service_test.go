// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles_test

import (
	"context"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-hq/sentra/internal/articles"
	"github.com/sentra-hq/sentra/internal/platform/apperr"
)

// memoryRepository is an in-memory articles.Repository for service tests.
type memoryRepository struct {
	records map[string]*articles.Article
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[string]*articles.Article)}
}

func (repo *memoryRepository) List(_ context.Context, limit, offset int) ([]*articles.Article, int, error) {
	all := make([]*articles.Article, 0, len(repo.records))
	for _, record := range repo.records {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	if offset >= len(all) {
		return nil, len(repo.records), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(repo.records), nil
}

func (repo *memoryRepository) GetByID(_ context.Context, id string) (*articles.Article, error) {
	record, ok := repo.records[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	copied := *record
	return &copied, nil
}

func (repo *memoryRepository) Create(_ context.Context, article *articles.Article) error {
	repo.records[article.ID] = article
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, article *articles.Article) error {
	if _, ok := repo.records[article.ID]; !ok {
		return apperr.NotFound("Article")
	}
	repo.records[article.ID] = article
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.records[id]; !ok {
		return apperr.NotFound("Article")
	}
	delete(repo.records, id)
	return nil
}

func newTestService(t *testing.T) (*articles.Service, *memoryRepository) {
	t.Helper()

	repository := newMemoryRepository()
	return articles.NewService(repository, slog.Default()), repository
}

func strPtr(s string) *string { return &s }

/*
TestService_Create verifies creation: ID assignment and the required-field
rules for title and content.
*/
func TestService_Create(t *testing.T) {
	service, repository := newTestService(t)

	t.Run("success", func(t *testing.T) {
		article, err := service.Create(context.Background(), "Release notes", "Everything shipped.")
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID)
		assert.Equal(t, "Release notes", article.Title)
		assert.Contains(t, repository.records, article.ID)
	})

	t.Run("validation_failures", func(t *testing.T) {
		tests := []struct {
			name    string
			title   string
			content string
		}{
			{"empty_title", "", "body"},
			{"empty_content", "title", ""},
			{"whitespace_title", "   ", "body"},
			{"both_empty", "", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(context.Background(), tt.title, tt.content)
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			})
		}
	})
}

/*
TestService_Patch verifies partial updates: only provided fields change, and
a provided field must still be non-empty.
*/
func TestService_Patch(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.Create(context.Background(), "Original title", "Original content")
	require.NoError(t, err)

	t.Run("title_only", func(t *testing.T) {
		updated, err := service.Patch(context.Background(), created.ID, articles.Patch{
			Title: strPtr("New title"),
		})
		require.NoError(t, err)

		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Original content", updated.Content)
	})

	t.Run("content_only", func(t *testing.T) {
		updated, err := service.Patch(context.Background(), created.ID, articles.Patch{
			Content: strPtr("New content"),
		})
		require.NoError(t, err)

		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "New content", updated.Content)
	})

	t.Run("empty_patch_is_noop", func(t *testing.T) {
		updated, err := service.Patch(context.Background(), created.ID, articles.Patch{})
		require.NoError(t, err)

		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "New content", updated.Content)
	})

	t.Run("provided_field_must_be_non_empty", func(t *testing.T) {
		_, err := service.Patch(context.Background(), created.ID, articles.Patch{
			Title: strPtr(""),
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)

		// The stored record is untouched after a rejected patch.
		current, err := service.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New title", current.Title)
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := service.Patch(context.Background(), "missing", articles.Patch{
			Title: strPtr("whatever"),
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "NOT_FOUND", ae.Code)
	})
}

/*
TestService_Delete verifies removal and the NotFound passthrough.
*/
func TestService_Delete(t *testing.T) {
	service, repository := newTestService(t)

	created, err := service.Create(context.Background(), "Doomed", "Short-lived.")
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.NotContains(t, repository.records, created.ID)

	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
