// Package store defines the persistence interface for the Giftwise server.
package store

import (
	"context"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Tag catalog (read-only reference data)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	GetTagsByNames(ctx context.Context, names []string) ([]*domain.Tag, error)

	// Item catalog (read-only for the recommendation core)
	ListItemsByTagIDs(ctx context.Context, tagIDs []int64) ([]domain.GiftItem, error)
	ListItemsByTag(ctx context.Context, tagID int64, params PaginationParams) (*Page[domain.GiftItem], error)
	ListLatestItems(ctx context.Context, limit int) ([]domain.GiftItem, error)

	// Profiles
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	GetProfile(ctx context.Context, id int64) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	UpdateProfileDescription(ctx context.Context, id int64, description string) (*domain.Profile, error)

	// Recommendation cache (one entry per profile, last write wins)
	GetRecommendationCache(ctx context.Context, profileID int64) (*domain.CacheEntry, error)
	UpsertRecommendationCache(ctx context.Context, profileID int64, result domain.Recommendation) (*domain.CacheEntry, error)
}
