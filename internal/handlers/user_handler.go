package handlers

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"sosmed/internal/models"
	"sosmed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler handles registration and the image routes living under
// /api/users.
type UserHandler struct {
	authService  *services.AuthService
	mediaService *services.MediaService
	uploadDir    string
	validate     *validator.Validate
}

// NewUserHandler creates a new UserHandler. uploadDir is where
// multipart files are staged before being forwarded to the media host.
func NewUserHandler(authService *services.AuthService, mediaService *services.MediaService, uploadDir string) *UserHandler {
	return &UserHandler{
		authService:  authService,
		mediaService: mediaService,
		uploadDir:    uploadDir,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the user routes. Registration is public;
// the image routes require a valid token.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Post("/upload", authRequired, h.HandleUpload)
	userRoutes.Get("/images", authRequired, h.HandleListImages)
	userRoutes.Delete("/images/:id", authRequired, h.HandleDeleteImage)
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// HandleRegister handles new user registration and returns a session
// token for the created account.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationErrors(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	token, err := h.authService.RegisterUser(user)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(errorList("User already exists"))
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

// HandleUpload stages the multipart file locally, forwards it to the
// media host and returns the created image record.
func (h *UserHandler) HandleUpload(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Printf("Error reading multipart image field: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Image file is required"))
	}

	stagedPath := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, stagedPath); err != nil {
		log.Printf("Error staging uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Something went wrong",
		})
	}
	defer os.Remove(stagedPath)

	image, err := h.mediaService.UploadImage(userID, stagedPath)
	if err != nil {
		log.Printf("Error uploading image for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Something went wrong",
		})
	}

	return c.JSON(image)
}

// HandleListImages returns all images owned by the caller.
func (h *UserHandler) HandleListImages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	images, err := h.mediaService.ListImages(userID)
	if err != nil {
		log.Printf("Error listing images for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Something went wrong",
		})
	}

	return c.JSON(images)
}

// HandleDeleteImage deletes an image the caller owns, remote copy
// included.
func (h *UserHandler) HandleDeleteImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	imageID := c.Params("id")

	if err := h.mediaService.DeleteImage(userID, imageID); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "Image not found",
			})
		}
		if errors.Is(err, services.ErrNotAuthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "User not authorized",
			})
		}
		log.Printf("Error deleting image %s: %v", imageID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(fiber.Map{"msg": "Image removed"})
}
