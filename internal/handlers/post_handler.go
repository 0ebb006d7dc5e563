package handlers

import (
	"errors"
	"log"

	"sosmed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles the feed routes under /api/posts.
type PostHandler struct {
	postService *services.PostService
	validate    *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the post routes. All of them require a
// valid token.
func (h *PostHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	postRoutes := router.Group("/posts", authRequired)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)
	postRoutes.Delete("/:id", h.HandleDeletePost)
}

// PostRequest represents the create-post request body.
type PostRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// HandleCreatePost stores a new post authored by the caller.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationErrors(err))
	}

	post, err := h.postService.CreatePost(userID, req.Text)
	if err != nil {
		log.Printf("Error creating post for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleGetPosts returns the whole feed, newest first.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.postService.GetAllPosts()
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(posts)
}

// HandleGetPostByID returns a single post.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	postID := c.Params("id")

	post, err := h.postService.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "Post not found",
			})
		}
		log.Printf("Error loading post %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(post)
}

// HandleDeletePost deletes a post the caller owns.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	if err := h.postService.DeletePost(userID, postID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "Post not found",
			})
		}
		if errors.Is(err, services.ErrNotAuthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "User not authorized",
			})
		}
		log.Printf("Error deleting post %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(fiber.Map{"msg": "Post removed"})
}
