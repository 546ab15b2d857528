package handlers

import (
	"errors"
	"strconv"

	"taxi-translator-backend/internal/models"
	"taxi-translator-backend/internal/repository"
	"taxi-translator-backend/internal/services"
	"taxi-translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a driver or passenger account
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration payload"
// @Success 200 {object} utils.StandardResponse "Created user"
// @Failure 400 {object} utils.StandardResponse "Invalid role or duplicate email"
// @Router /register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := h.service.Register(ctx, services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Role must be 'driver' or 'passenger'")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email already exists")
		default:
			h.logger.WithError(err).Error("Registration failed")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User registered successfully", user)
}

// Login godoc
// @Summary Log a user in
// @Description Verify credentials and return the user record
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login payload"
// @Success 200 {object} utils.StandardResponse "User record"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Router /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.WithError(err).Error("Login failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", user)
}

// GetProfile godoc
// @Summary Get a user profile
// @Description User record plus translation aggregates
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "Profile with stats"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.userID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, stats, err := h.service.Profile(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to get profile")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Description Partial update: only supplied fields change
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param changes body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse "Updated user"
// @Failure 400 {object} utils.StandardResponse "No fields given or email collision"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.userID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := h.service.UpdateProfile(ctx, id, models.UserUpdate{
		FullName:     req.FullName,
		Email:        req.Email,
		LanguagePref: req.LanguagePref,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoUpdateFields):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No fields to update")
		case errors.Is(err, repository.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email already exists")
		default:
			h.logger.WithError(err).WithField("user_id", id).Error("Failed to update profile")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile updated successfully", user)
}

// GetTranslationHistory godoc
// @Summary Get a user's translation history
// @Description Sender's messages, newest first, limit/offset paginated
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} utils.StandardResponse "History page"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/translation-history [get]
func (h *UserHandler) GetTranslationHistory(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.userID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	history, total, err := h.service.History(ctx, id, limit, offset)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to get translation history")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch translation history")
	}

	meta := utils.CreatePaginationMeta(limit, offset, len(history), total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Translation history retrieved successfully", history, meta)
}

// UpdateLanguage godoc
// @Summary Update a user's language preference
// @Description Accepts a seeded language code or display name
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param language body UpdateLanguageRequest true "Language preference"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Unknown language"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/language [put]
func (h *UserHandler) UpdateLanguage(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := h.userID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req UpdateLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := h.service.UpdateLanguage(ctx, id, req.LanguagePref); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrUnknownLanguage):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language")
		default:
			h.logger.WithError(err).WithField("user_id", id).Error("Failed to update language preference")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update language")
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Language preference updated successfully", nil)
}

func (h *UserHandler) userID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
