package services

import (
	"fmt"
	"log"

	"sosmed/internal/integrations/cloudinary"
	"sosmed/internal/models"
	"sosmed/internal/repositories"
)

// Uploader forwards staged files to the external media host and
// deletes remote copies. Implemented by the cloudinary client.
type Uploader interface {
	Upload(path string) (*cloudinary.UploadResult, error)
	Destroy(publicID string) error
}

// MediaService handles the image upload/list/delete flows.
type MediaService struct {
	imageRepo   repositories.ImageRepository
	profileRepo repositories.ProfileRepository
	uploader    Uploader
	events      EventPublisher
}

// NewMediaService creates a new MediaService.
func NewMediaService(imageRepo repositories.ImageRepository, profileRepo repositories.ProfileRepository, uploader Uploader, events EventPublisher) *MediaService {
	return &MediaService{
		imageRepo:   imageRepo,
		profileRepo: profileRepo,
		uploader:    uploader,
		events:      events,
	}
}

// UploadImage forwards the staged file to the media host, points the
// owner's profile at the returned URL and records the image metadata.
//
// TODO: the profile update and the image insert are two independent
// writes with no transaction between them; if the insert fails the
// profile is left referencing an image with no registry entry.
func (s *MediaService) UploadImage(userID, stagedPath string) (*models.Image, error) {
	uploaded, err := s.uploader.Upload(stagedPath)
	if err != nil {
		return nil, fmt.Errorf("media host upload failed: %w", err)
	}

	profile, err := s.profileRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		// Uploading requires profile setup; handlers surface this as a
		// plain server error.
		return nil, ErrProfileNotFound
	}

	profile.ImageURL = uploaded.SecureURL
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile image: %w", err)
	}

	image := &models.Image{
		UserID:   userID,
		PublicID: uploaded.PublicID,
		URL:      uploaded.SecureURL,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	s.publish(map[string]interface{}{
		"event":   "image.uploaded",
		"userID":  userID,
		"imageID": image.ID,
		"url":     image.URL,
	})

	return image, nil
}

// ListImages returns all images owned by the given user.
func (s *MediaService) ListImages(userID string) ([]models.Image, error) {
	return s.imageRepo.GetByUser(userID)
}

// DeleteImage removes an image the caller owns. The remote copy is
// destroyed before the local record.
//
// TODO: if the local delete fails the remote copy is already gone and
// there is no compensation step.
func (s *MediaService) DeleteImage(userID, imageID string) error {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	if image == nil {
		return ErrImageNotFound
	}
	if image.UserID != userID {
		return ErrNotAuthorized
	}

	if err := s.uploader.Destroy(image.PublicID); err != nil {
		return fmt.Errorf("failed to delete remote copy: %w", err)
	}

	if err := s.imageRepo.Delete(image.ID); err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}

	return nil
}

func (s *MediaService) publish(event map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishActivity(event); err != nil {
		log.Printf("Warning: failed to publish %v event: %v", event["event"], err)
	}
}
