package services

import (
	"fmt"
	"log"

	"sosmed/internal/models"
	"sosmed/internal/repositories"
)

// PostService handles the post feed.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	events   EventPublisher
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, events EventPublisher) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		events:   events,
	}
}

// CreatePost stores a new post for the author, denormalizing the
// author's name and avatar into the record.
func (s *PostService) CreatePost(userID, text string) (*models.Post, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	post := &models.Post{
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishActivity(map[string]interface{}{
			"event":  "post.created",
			"userID": userID,
			"postID": post.ID,
		}); err != nil {
			log.Printf("Warning: failed to publish post.created event: %v", err)
		}
	}

	return post, nil
}

// GetAllPosts returns the whole feed, newest first.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostByID returns a single post, or ErrPostNotFound.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// DeletePost removes a post the caller owns.
func (s *PostService) DeletePost(userID, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotAuthorized
	}

	return s.postRepo.Delete(post.ID)
}
