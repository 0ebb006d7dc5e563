package handlers

import (
	"errors"
	"log"

	"sosmed/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles the profile routes under /api/profile.
type ProfileHandler struct {
	profileService *services.ProfileService
	validate       *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the profile routes. All of them require a
// valid token.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	profileRoutes := router.Group("/profile", authRequired)
	profileRoutes.Get("/me", h.HandleGetMyProfile)
	profileRoutes.Post("/", h.HandleUpsertProfile)
}

// ProfileRequest represents the profile-setup request body.
type ProfileRequest struct {
	Bio      string `json:"bio" validate:"omitempty,max=500"`
	Location string `json:"location" validate:"omitempty,max=100"`
}

// HandleGetMyProfile returns the caller's profile.
func (h *ProfileHandler) HandleGetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.profileService.GetByUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"msg": "There is no profile for this user",
			})
		}
		log.Printf("Error loading profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(profile)
}

// HandleUpsertProfile creates or updates the caller's profile.
func (h *ProfileHandler) HandleUpsertProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationErrors(err))
	}

	profile, err := h.profileService.Upsert(userID, req.Bio, req.Location)
	if err != nil {
		log.Printf("Error upserting profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Server error",
		})
	}

	return c.JSON(profile)
}
