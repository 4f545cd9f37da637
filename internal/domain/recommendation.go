package domain

import (
	"sort"
	"time"
)

// Recommendation is the resolved outcome of one description: the selected
// tags, the matching catalog items (deduplicated, price-ascending, bounded),
// and an optional prose gifting strategy.
// It is transient: produced fresh or served from the cache, never
// persisted on its own.
type Recommendation struct {
	ProfileID *int64     `json:"profile_id,omitempty"`
	Items     []GiftItem `json:"gifts"`
	Tags      []string   `json:"tags"`
	Strategy  string     `json:"strategy,omitempty"`
}

// CacheEntry memoizes a previously resolved recommendation for a profile.
// At most one entry exists per profile id; a prior entry is fully replaced
// on write.
type CacheEntry struct {
	ProfileID int64          `json:"profile_id"`
	Result    Recommendation `json:"result"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Fresh reports whether the entry is still within the expiry window at
// the given instant. Stale entries must be treated as cache misses.
func (e *CacheEntry) Fresh(now time.Time, expiry time.Duration) bool {
	return now.Sub(e.UpdatedAt) <= expiry
}

// DedupeItems removes duplicate items by id, keeping the first occurrence.
// Items matched through several selected tags appear once in the result.
func DedupeItems(items []GiftItem) []GiftItem {
	seen := make(map[int64]bool, len(items))
	out := make([]GiftItem, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

// SortItemsByPrice orders items price-ascending in place.
// A nil price sorts as 0. The sort is stable so equal-priced items keep
// their catalog order.
func SortItemsByPrice(items []GiftItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EffectivePrice() < items[j].EffectivePrice()
	})
}

// BoundItems truncates items to at most max entries.
// A non-positive max leaves the slice unchanged.
func BoundItems(items []GiftItem, max int) []GiftItem {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}
