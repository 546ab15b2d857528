package handlers

import (
	"errors"

	"taxi-translator-backend/internal/services"
	"taxi-translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	service services.AdminService
	logger  *logrus.Logger
}

func NewAdminHandler(service services.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// Login godoc
// @Summary Administrator login
// @Description Verify admin credentials and issue a Bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} utils.StandardResponse "Token and admin record"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	token, admin, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.WithError(err).Error("Admin login failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// GetSystemStats godoc
// @Summary Global system statistics
// @Description Users by role, translations by target language, overall totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "System aggregates"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Router /admin/stats [get]
func (h *AdminHandler) GetSystemStats(c *fiber.Ctx) error {
	stats, err := h.service.SystemStats(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get system stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch system statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "System statistics retrieved successfully", stats)
}
