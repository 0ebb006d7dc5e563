package repositories

import "sosmed/internal/models"

// ProfileRepository defines the interface for profile data access.
// Profiles are one-to-one with users, so lookups key on the user id.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByUser(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
}
