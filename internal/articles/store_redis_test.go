// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-hq/sentra/internal/articles"
)

// commandRecorder short-circuits every Redis command, appending its name to
// a shared operation log instead of touching the network.
type commandRecorder struct {
	log *[]string
}

func (recorder *commandRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (recorder *commandRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		*recorder.log = append(*recorder.log, cmd.Name())
		return nil
	}
}

func (recorder *commandRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// orderedRepository records store writes into the same operation log the
// Redis hook writes to, so tests can assert relative ordering.
type orderedRepository struct {
	memoryRepository
	log      *[]string
	writeErr error
}

func (repo *orderedRepository) Update(ctx context.Context, article *articles.Article) error {
	*repo.log = append(*repo.log, "store_update")
	if repo.writeErr != nil {
		return repo.writeErr
	}
	return repo.memoryRepository.Update(ctx, article)
}

func (repo *orderedRepository) Delete(ctx context.Context, id string) error {
	*repo.log = append(*repo.log, "store_delete")
	if repo.writeErr != nil {
		return repo.writeErr
	}
	return repo.memoryRepository.Delete(ctx, id)
}

func newCachedFixture(t *testing.T) (*articles.CachedRepository, *orderedRepository, *[]string) {
	t.Helper()

	operations := &[]string{}

	client := redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:0",
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return nil, errors.New("dialing disabled in tests")
		},
	})
	client.AddHook(&commandRecorder{log: operations})

	inner := &orderedRepository{
		memoryRepository: memoryRepository{records: make(map[string]*articles.Article)},
		log:              operations,
	}
	return articles.NewCachedRepository(inner, client, slog.Default()), inner, operations
}

/*
TestCachedRepository_InvalidateAfterWrite verifies that cache eviction
happens only after the delegated write has succeeded, so a concurrent read
between eviction and commit cannot re-cache the pre-write row.
*/
func TestCachedRepository_InvalidateAfterWrite(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		cached, inner, operations := newCachedFixture(t)
		inner.records["a1"] = &articles.Article{ID: "a1", Title: "v1", Content: "body"}

		err := cached.Update(context.Background(), &articles.Article{ID: "a1", Title: "v2", Content: "body"})
		require.NoError(t, err)

		assert.Equal(t, []string{"store_update", "del"}, *operations)
	})

	t.Run("delete", func(t *testing.T) {
		cached, inner, operations := newCachedFixture(t)
		inner.records["a1"] = &articles.Article{ID: "a1", Title: "v1", Content: "body"}

		err := cached.Delete(context.Background(), "a1")
		require.NoError(t, err)

		assert.Equal(t, []string{"store_delete", "del"}, *operations)
	})
}

/*
TestCachedRepository_FailedWriteKeepsCache verifies that a failed write does
not evict the cached entry.
*/
func TestCachedRepository_FailedWriteKeepsCache(t *testing.T) {
	cached, inner, operations := newCachedFixture(t)
	inner.records["a1"] = &articles.Article{ID: "a1", Title: "v1", Content: "body"}
	inner.writeErr = errors.New("write refused")

	err := cached.Update(context.Background(), &articles.Article{ID: "a1", Title: "v2", Content: "body"})
	require.Error(t, err)

	assert.Equal(t, []string{"store_update"}, *operations)
	assert.NotContains(t, *operations, "del")
}
