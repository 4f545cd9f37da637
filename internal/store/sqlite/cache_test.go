package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

func TestRecommendationCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	profileID := int64(7)
	result := domain.Recommendation{
		ProfileID: &profileID,
		Items: []domain.GiftItem{
			{ID: 1, Name: "Tennis Racket", Price: fprice(49), CreatedAt: time.Now()},
			{ID: 2, Name: "Coffee Grinder", Price: fprice(35), CreatedAt: time.Now()},
		},
		Tags:     []string{"Sports", "Coffee"},
		Strategy: "Lean into the morning routine.",
	}

	entry, err := s.UpsertRecommendationCache(ctx, profileID, result)
	if err != nil {
		t.Fatalf("UpsertRecommendationCache: %v", err)
	}
	if entry.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}

	got, err := s.GetRecommendationCache(ctx, profileID)
	if err != nil {
		t.Fatalf("GetRecommendationCache: %v", err)
	}

	if len(got.Result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Result.Items))
	}
	if got.Result.Items[0].Name != "Tennis Racket" {
		t.Errorf("items[0]: got %q", got.Result.Items[0].Name)
	}
	if len(got.Result.Tags) != 2 || got.Result.Tags[0] != "Sports" {
		t.Errorf("tags: got %v", got.Result.Tags)
	}
	if got.Result.Strategy != result.Strategy {
		t.Errorf("strategy: got %q", got.Result.Strategy)
	}
}

func TestRecommendationCacheMiss(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRecommendationCache(context.Background(), 99)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertReplacesEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := domain.Recommendation{
		Items: []domain.GiftItem{{ID: 1, Name: "Old Pick"}},
		Tags:  []string{"Books"},
	}
	if _, err := s.UpsertRecommendationCache(ctx, 7, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := domain.Recommendation{
		Items: []domain.GiftItem{{ID: 2, Name: "New Pick"}, {ID: 3, Name: "Another"}},
		Tags:  []string{"Sports"},
	}
	if _, err := s.UpsertRecommendationCache(ctx, 7, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.GetRecommendationCache(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecommendationCache: %v", err)
	}

	// The prior entry is fully replaced, not merged.
	if len(got.Result.Items) != 2 || got.Result.Items[0].Name != "New Pick" {
		t.Errorf("entry not replaced: %+v", got.Result.Items)
	}

	// Still exactly one row for the profile.
	var count int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM recommendation_cache WHERE profile_id = 7").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d cache rows, want 1", count)
	}
}
