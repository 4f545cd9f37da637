package domain

import "time"

// GiftItem is a single catalog entry that can be recommended.
// Items carry zero or more tags through a many-to-many join; the
// recommendation core only ever reads them.
// Field names on the wire match the original catalog schema.
type GiftItem struct {
	ID        int64     `json:"gift_id"`
	Name      string    `json:"gift_name"`
	Price     *float64  `json:"gift_price"` // nil when the price is unknown
	ImageURL  string    `json:"img_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags,omitempty"`
}

// EffectivePrice returns the price used for ordering.
// Items without a price sort as free, so they surface first.
func (g *GiftItem) EffectivePrice() float64 {
	if g.Price == nil {
		return 0
	}
	return *g.Price
}
