package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"errors"
	"fmt"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// GetRecommendationCache retrieves the cached recommendation for a profile.
// Returns store.ErrNotFound if no entry exists. Freshness is a policy
// concern; callers decide whether an entry is still usable.
func (s *Store) GetRecommendationCache(ctx context.Context, profileID int64) (*domain.CacheEntry, error) {
	var (
		resultJSON string
		updatedAt  string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT result, updated_at
		FROM recommendation_cache
		WHERE profile_id = ?`, profileID).Scan(&resultJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := &domain.CacheEntry{ProfileID: profileID}

	if err := json.Unmarshal([]byte(resultJSON), &entry.Result); err != nil {
		return nil, fmt.Errorf("decode cached recommendation: %w", err)
	}

	entry.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// UpsertRecommendationCache stores the recommendation for a profile,
// fully replacing any prior entry and stamping updated_at with now.
func (s *Store) UpsertRecommendationCache(ctx context.Context, profileID int64, result domain.Recommendation) (*domain.CacheEntry, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode recommendation: %w", err)
	}

	now := time.Now()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recommendation_cache (profile_id, result, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET
			result = excluded.result,
			updated_at = excluded.updated_at`,
		profileID, string(resultJSON), formatTime(now))
	if err != nil {
		return nil, err
	}

	return &domain.CacheEntry{
		ProfileID: profileID,
		Result:    result,
		UpdatedAt: now,
	}, nil
}
