package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/inference"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// TagInferrer selects tag names for a recipient description.
// Satisfied by *inference.Client; tests substitute a stub.
type TagInferrer interface {
	InferTags(ctx context.Context, description string, vocabulary []string) (inference.Selection, error)
}

// RecommendationConfig tunes the resolution pipeline.
type RecommendationConfig struct {
	// MaxItems bounds a recommendation result (default 9).
	MaxItems int
	// CacheExpiry is the freshness window for cached results (default 168h).
	CacheExpiry time.Duration
}

// RecommendationService turns recipient descriptions into bounded,
// price-ordered gift recommendations, memoized per profile.
type RecommendationService struct {
	store       store.Store
	inferrer    TagInferrer
	maxItems    int
	cacheExpiry time.Duration
	logger      *slog.Logger

	// now is swappable for freshness tests.
	now func() time.Time
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(store store.Store, inferrer TagInferrer, cfg RecommendationConfig, logger *slog.Logger) *RecommendationService {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 9
	}
	if cfg.CacheExpiry <= 0 {
		cfg.CacheExpiry = 7 * 24 * time.Hour
	}

	return &RecommendationService{
		store:       store,
		inferrer:    inferrer,
		maxItems:    cfg.MaxItems,
		cacheExpiry: cfg.CacheExpiry,
		logger:      logger,
		now:         time.Now,
	}
}

// ResolveInput identifies the description to resolve: either a raw
// description (or prompt) or a profile id whose stored description is used.
type ResolveInput struct {
	ProfileID   *int64
	Description string
}

// Resolve runs the full resolution pipeline for one input.
//
// The pipeline is strictly sequential and atomic from the caller's view:
// any failing step aborts the whole resolution. Only two outcomes are
// valid empty results rather than errors: the model selecting no usable
// tags, and selected tags matching no items.
func (s *RecommendationService) Resolve(ctx context.Context, input ResolveInput) (*domain.Recommendation, error) {
	description, err := s.resolveDescription(ctx, input)
	if err != nil {
		return nil, err
	}

	vocabulary, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to load tag vocabulary", err)
	}
	if len(vocabulary) == 0 {
		// Nothing the model could select; same shape as an empty selection.
		s.logger.Warn("tag vocabulary is empty, returning empty recommendation")
		return &domain.Recommendation{
			ProfileID: input.ProfileID,
			Items:     []domain.GiftItem{},
			Tags:      []string{},
		}, nil
	}

	selection, err := s.inferrer.InferTags(ctx, description, domain.TagNames(vocabulary))
	if err != nil {
		return nil, err
	}

	selected := filterToVocabulary(selection.Tags, vocabulary)
	if len(selected) == 0 {
		// Valid outcome: the model picked nothing usable.
		s.logger.Info("no usable tags selected",
			"raw_tags", selection.Tags,
			"profile_id", input.ProfileID,
		)
		return &domain.Recommendation{
			ProfileID: input.ProfileID,
			Items:     []domain.GiftItem{},
			Tags:      []string{},
			Strategy:  selection.Strategy,
		}, nil
	}

	tags, err := s.store.GetTagsByNames(ctx, selected)
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to resolve tag names", err)
	}

	// Any selected tag qualifies an item (inclusive-OR join).
	items, err := s.store.ListItemsByTagIDs(ctx, domain.TagIDs(tags))
	if err != nil {
		return nil, errors.CatalogUnavailable("failed to load items", err)
	}

	items = domain.DedupeItems(items)
	domain.SortItemsByPrice(items)
	items = domain.BoundItems(items, s.maxItems)
	if items == nil {
		items = []domain.GiftItem{}
	}

	s.logger.Info("recommendation resolved",
		"profile_id", input.ProfileID,
		"tags", selected,
		"items", len(items),
	)

	return &domain.Recommendation{
		ProfileID: input.ProfileID,
		Items:     items,
		Tags:      selected,
		Strategy:  selection.Strategy,
	}, nil
}

// RecommendForProfile is the cached read-through path.
//
// A fresh cache hit short-circuits resolution entirely. On a miss the
// result is resolved and written back before returning; a failed write is
// surfaced rather than hidden, so callers never get false freshness
// guarantees. A failed READ is non-fatal and falls through to resolution.
// The returned bool reports whether the result came from the cache.
func (s *RecommendationService) RecommendForProfile(ctx context.Context, profileID int64) (*domain.Recommendation, bool, error) {
	entry, err := s.store.GetRecommendationCache(ctx, profileID)
	switch {
	case err == nil:
		if entry.Fresh(s.now(), s.cacheExpiry) {
			s.logger.Debug("cache hit", "profile_id", profileID)
			return &entry.Result, true, nil
		}
	case !errors.Is(err, store.ErrNotFound):
		s.logger.Warn("cache read failed, resolving fresh",
			"profile_id", profileID,
			"error", err,
		)
	}

	result, err := s.Resolve(ctx, ResolveInput{ProfileID: &profileID})
	if err != nil {
		return nil, false, err
	}

	if _, err := s.store.UpsertRecommendationCache(ctx, profileID, *result); err != nil {
		return nil, false, errors.CacheUnavailable("failed to cache recommendation", err)
	}

	return result, false, nil
}

// LookupCache returns the cached entry for a profile, or nil on a miss.
// Absent and expired entries are indistinguishable to the caller.
func (s *RecommendationService) LookupCache(ctx context.Context, profileID int64) (*domain.CacheEntry, error) {
	entry, err := s.store.GetRecommendationCache(ctx, profileID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.CacheUnavailable("failed to read recommendation cache", err)
	}
	if !entry.Fresh(s.now(), s.cacheExpiry) {
		return nil, nil
	}
	return entry, nil
}

// StoreCache upserts the cached result for a profile.
func (s *RecommendationService) StoreCache(ctx context.Context, profileID int64, result domain.Recommendation) (*domain.CacheEntry, error) {
	entry, err := s.store.UpsertRecommendationCache(ctx, profileID, result)
	if err != nil {
		return nil, errors.CacheUnavailable("failed to write recommendation cache", err)
	}
	return entry, nil
}

// resolveDescription produces the working description for a resolution.
func (s *RecommendationService) resolveDescription(ctx context.Context, input ResolveInput) (string, error) {
	if description := strings.TrimSpace(input.Description); description != "" {
		return description, nil
	}

	if input.ProfileID == nil {
		return "", errors.InvalidInput("either a profile id or a description is required")
	}

	profile, err := s.store.GetProfile(ctx, *input.ProfileID)
	if errors.Is(err, store.ErrNotFound) {
		return "", errors.NotFoundf("profile %d not found", *input.ProfileID)
	}
	if err != nil {
		return "", errors.CatalogUnavailable("failed to load profile", err)
	}

	// A profile without a description cannot be resolved; this is
	// missing data, not an empty selection.
	if !profile.HasDescription() {
		return "", errors.NotFoundf("profile %d has no description", *input.ProfileID)
	}

	return strings.TrimSpace(profile.LongDescription), nil
}

// filterToVocabulary keeps only selected names present in the vocabulary,
// preserving selection order and dropping duplicates.
func filterToVocabulary(selected []string, vocabulary []*domain.Tag) []string {
	valid := make(map[string]bool, len(vocabulary))
	for _, tag := range vocabulary {
		valid[tag.Name] = true
	}

	seen := make(map[string]bool, len(selected))
	out := make([]string, 0, len(selected))
	for _, name := range selected {
		name = strings.TrimSpace(name)
		if !valid[name] || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
