package repositories

import "sosmed/internal/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetAll() ([]models.Post, error)
	GetByID(id string) (*models.Post, error)
	Delete(id string) error
}
