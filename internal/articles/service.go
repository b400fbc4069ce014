// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

package articles

import (
	"context"
	"log/slog"

	"github.com/sentra-hq/sentra/internal/platform/validate"
	"github.com/sentra-hq/sentra/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context, limit, offset int) ([]*Article, int, error) {
	return service.repo.List(ctx, limit, offset)
}

func (service *Service) Get(ctx context.Context, id string) (*Article, error) {
	return service.repo.GetByID(ctx, id)
}

// Create validates and persists a new article. Title and content are both
// required to be non-empty.
func (service *Service) Create(ctx context.Context, title, content string) (*Article, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title)
	validator.Required(FieldContent, content)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	article := &Article{
		ID:      uuidv7.New(),
		Title:   title,
		Content: content,
	}

	if err := service.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	service.logger.Info("article_created", slog.String("article_id", article.ID))
	return article, nil
}

// Patch applies a partial update: only the fields present in the patch are
// changed. A provided field must still pass the non-empty rule.
func (service *Service) Patch(ctx context.Context, id string, patch Patch) (*Article, error) {
	article, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title)
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		validator.Required(FieldContent, *patch.Content)
		article.Content = *patch.Content
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	service.logger.Info("article_updated", slog.String("article_id", article.ID))
	return article, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.String("article_id", id))
	return nil
}
