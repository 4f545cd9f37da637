package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// ProfileService manages recipient profiles.
type ProfileService struct {
	store  store.Store
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// CreateProfile creates a recipient profile.
func (s *ProfileService) CreateProfile(ctx context.Context, name string, age *int, description string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidInput("profile name is required")
	}

	profile := &domain.Profile{
		Name:            name,
		Age:             age,
		LongDescription: strings.TrimSpace(description),
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, errors.Internalf("failed to create profile: %v", err)
	}

	s.logger.Info("profile created", "profile_id", profile.ID, "name", profile.Name)

	return profile, nil
}

// GetProfile returns a profile by id.
func (s *ProfileService) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errors.NotFoundf("profile %d not found", id)
	}
	if err != nil {
		return nil, errors.Internalf("failed to get profile: %v", err)
	}
	return profile, nil
}

// ListProfiles returns all profiles.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Internalf("failed to list profiles: %v", err)
	}
	return profiles, nil
}

// UpdateDescription replaces a profile's long description.
//
// The recommendation cache is deliberately left untouched: a stale cached
// result remains served until it expires or the caller writes a fresh one
// through the cache endpoint.
func (s *ProfileService) UpdateDescription(ctx context.Context, id int64, description string) (*domain.Profile, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.InvalidInput("long_description is required")
	}

	profile, err := s.store.UpdateProfileDescription(ctx, id, description)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errors.NotFoundf("profile %d not found", id)
	}
	if err != nil {
		return nil, errors.Internalf("failed to update profile: %v", err)
	}

	s.logger.Info("profile description updated", "profile_id", id)

	return profile, nil
}
