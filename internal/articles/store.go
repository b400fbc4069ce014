// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import "context"

// Repository defines the data access contract for articles.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Article, int, error)
	GetByID(ctx context.Context, id string) (*Article, error)
	Create(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id string) error
}
