// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sentra-hq/sentra/internal/platform/constants"
)

// cacheTTL bounds how stale a cached article may get if an invalidation is lost.
const cacheTTL = 5 * time.Minute

// CachedRepository decorates a [Repository] with a Redis read cache for
// single-article lookups.
//
// # Semantics
//
// Only GetByID is cached. Update and Delete invalidate the cached entry
// once the delegated write has succeeded. Cache failures degrade to the
// inner repository — Redis being down must never fail a read.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	logger *slog.Logger
}

// NewCachedRepository wraps inner with a Redis read cache.
func NewCachedRepository(inner Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{inner: inner, client: client, logger: logger}
}

func cacheKey(id string) string {
	return constants.RedisPrefixArticle + id
}

// GetByID serves from cache when possible, falling back to the inner store.
func (repository *CachedRepository) GetByID(ctx context.Context, id string) (*Article, error) {
	payload, err := repository.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		article := &Article{}
		if unmarshalErr := json.Unmarshal(payload, article); unmarshalErr == nil {
			return article, nil
		}
		// Corrupt entry: drop it and fall through to the source of truth.
		repository.client.Del(ctx, cacheKey(id))
	} else if err != redis.Nil {
		repository.logger.Warn("article_cache_read_failed", slog.Any("error", err))
	}

	article, err := repository.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(article); marshalErr == nil {
		if setErr := repository.client.Set(ctx, cacheKey(id), payload, cacheTTL).Err(); setErr != nil {
			repository.logger.Warn("article_cache_write_failed", slog.Any("error", setErr))
		}
	}

	return article, nil
}

// List is not cached; it delegates directly.
func (repository *CachedRepository) List(ctx context.Context, limit, offset int) ([]*Article, int, error) {
	return repository.inner.List(ctx, limit, offset)
}

// Create delegates directly. The new entry is cached lazily on first read.
func (repository *CachedRepository) Create(ctx context.Context, article *Article) error {
	return repository.inner.Create(ctx, article)
}

// Update delegates the write, then invalidates the cached entry. Evicting
// after the write lands means a concurrent read cannot re-cache the
// pre-write row, and a failed write leaves the cache untouched.
func (repository *CachedRepository) Update(ctx context.Context, article *Article) error {
	if err := repository.inner.Update(ctx, article); err != nil {
		return err
	}
	repository.invalidate(ctx, article.ID)
	return nil
}

// Delete delegates the write, then invalidates the cached entry.
func (repository *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := repository.inner.Delete(ctx, id); err != nil {
		return err
	}
	repository.invalidate(ctx, id)
	return nil
}

func (repository *CachedRepository) invalidate(ctx context.Context, id string) {
	if err := repository.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		repository.logger.Warn("article_cache_invalidate_failed",
			slog.String("article_id", id),
			slog.Any("error", err),
		)
	}
}
