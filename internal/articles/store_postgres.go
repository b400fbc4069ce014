// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns a page of articles, newest first, and the total count.
func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Article, int, error) {
	const query = `
		SELECT id, title, content, createdat, updatedat
		FROM article
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_article_repo_list_failed: %w", err)
	}
	defer rows.Close()

	items := []*Article{}
	for rows.Next() {
		article := &Article{}
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("postgres_article_repo_scan_failed: %w", err)
		}
		items = append(items, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_article_repo_rows_failed: %w", err)
	}

	var total int
	if err := repository.pool.QueryRow(ctx, "SELECT COUNT(*) FROM article").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_article_repo_count_failed: %w", err)
	}

	return items, total, nil
}

// GetByID retrieves a single article.
//
// Returns [apperr.NotFound] if the id does not exist.
func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Article, error) {
	const query = `
		SELECT id, title, content, createdat, updatedat
		FROM article
		WHERE id = $1`

	article := &Article{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	return article, nil
}

// Create persists a new article.
func (repository *PostgresRepository) Create(ctx context.Context, article *Article) error {
	const query = `
		INSERT INTO article (id, title, content, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_article_repo_create_failed: %w", err)
	}

	return nil
}

// Update persists the full current state of an article.
func (repository *PostgresRepository) Update(ctx context.Context, article *Article) error {
	const query = `
		UPDATE article
		SET title = $2, content = $3, updatedat = $4
		WHERE id = $1`

	article.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query, article.ID, article.Title, article.Content, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_article_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}

// Delete permanently removes an article.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := repository.pool.Exec(ctx, "DELETE FROM article WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("postgres_article_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}
