package repositories

import (
	"fmt"

	"sosmed/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{
		db: db,
	}
}

// Create creates a new image record in the database.
func (r *GORMImageRepository) Create(image *models.Image) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// GetByID retrieves a single image record by its ID.
// Returns (nil, nil) when no record exists so the caller can map the
// absence to a not-found response.
func (r *GORMImageRepository) GetByID(id string) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get image by ID %s: %w", id, err)
	}
	return &image, nil
}

// GetByUser retrieves all image records owned by the given user.
func (r *GORMImageRepository) GetByUser(userID string) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Find(&images, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get images for user %s: %w", userID, err)
	}
	return images, nil
}

// Delete deletes an image record by its ID.
func (r *GORMImageRepository) Delete(id string) error {
	res := r.db.Delete(&models.Image{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s not found for deletion", id)
	}
	return nil
}
