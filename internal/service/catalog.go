package service

import (
	"context"
	"log/slog"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// CatalogService serves read-only views of the tag and item catalog.
// The catalog is reference data; nothing here mutates it.
type CatalogService struct {
	store  store.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// ListCategories returns the full tag catalog.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to list categories", err)
	}
	return tags, nil
}

// ListItemsByTag returns one page of items carrying the given tag.
func (s *CatalogService) ListItemsByTag(ctx context.Context, tagID int64, params store.PaginationParams) (*store.Page[domain.GiftItem], error) {
	page, err := s.store.ListItemsByTag(ctx, tagID, params)
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to list items", err)
	}
	return page, nil
}

// ListLatestItems returns the newest catalog items for the landing feed.
func (s *CatalogService) ListLatestItems(ctx context.Context, limit int) ([]domain.GiftItem, error) {
	items, err := s.store.ListLatestItems(ctx, limit)
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to list latest items", err)
	}
	if items == nil {
		items = []domain.GiftItem{}
	}
	return items, nil
}
