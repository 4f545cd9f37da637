package domain

import (
	"strings"
	"time"
)

// Profile describes a gift recipient.
// Profiles are created by the onboarding flow; the recommendation
// resolver only reads the long description.
type Profile struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Age             *int      `json:"age,omitempty"`
	LongDescription string    `json:"long_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasDescription reports whether the profile carries a usable
// free-text description for tag inference.
func (p *Profile) HasDescription() bool {
	return strings.TrimSpace(p.LongDescription) != ""
}
