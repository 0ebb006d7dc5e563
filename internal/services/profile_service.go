package services

import (
	"fmt"

	"sosmed/internal/models"
	"sosmed/internal/repositories"
)

// ProfileService handles the per-user profile record.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetByUser returns the profile owned by the given user, or
// ErrProfileNotFound when none has been set up yet.
func (s *ProfileService) GetByUser(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Upsert creates the caller's profile on first use, otherwise updates
// its display fields. The image URL is owned by the upload flow and is
// never touched here.
func (s *ProfileService) Upsert(userID, bio, location string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile == nil {
		profile = &models.Profile{
			UserID:   userID,
			Bio:      bio,
			Location: location,
		}
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return profile, nil
	}

	profile.Bio = bio
	profile.Location = location
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
