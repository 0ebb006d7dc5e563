package repositories

import "sosmed/internal/models"

// ImageRepository defines the interface for image metadata access.
type ImageRepository interface {
	Create(image *models.Image) error
	GetByID(id string) (*models.Image, error)
	GetByUser(userID string) ([]models.Image, error)
	Delete(id string) error
}
