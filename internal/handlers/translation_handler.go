package handlers

import (
	"errors"
	"strconv"

	"taxi-translator-backend/internal/repository"
	"taxi-translator-backend/internal/services"
	"taxi-translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationHandler struct {
	service   services.TranslationService
	languages repository.LanguageRepository
	logger    *logrus.Logger
}

func NewTranslationHandler(service services.TranslationService, languages repository.LanguageRepository, logger *logrus.Logger) *TranslationHandler {
	return &TranslationHandler{
		service:   service,
		languages: languages,
		logger:    logger,
	}
}

// Translate godoc
// @Summary Translate text
// @Description Translate via the provider chain, degrading to the phrase dictionary
// @Tags translation
// @Accept json
// @Produce json
// @Param request body TranslateRequest true "Translation request"
// @Success 200 {object} utils.StandardResponse "Translation result"
// @Failure 400 {object} utils.StandardResponse "Empty text"
// @Router /translate [post]
func (h *TranslationHandler) Translate(c *fiber.Ctx) error {
	ctx := c.Context()

	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	result, err := h.service.Translate(ctx, services.TranslateInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Text cannot be empty")
		}
		h.logger.WithError(err).Error("Translation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Translation failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation successful", result)
}

// GetLanguages godoc
// @Summary List supported languages
// @Description The seeded South African language set, ordered by name
// @Tags translation
// @Produce json
// @Success 200 {object} utils.StandardResponse "Language list"
// @Router /languages [get]
func (h *TranslationHandler) GetLanguages(c *fiber.Ctx) error {
	ctx := c.Context()

	languages, err := h.languages.FindAll(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch languages")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch languages")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Languages retrieved successfully", fiber.Map{
		"languages": languages,
		"count":     len(languages),
	})
}

// SearchTranslations godoc
// @Summary Search past translations
// @Description Substring match over original and translated text, newest first
// @Tags translation
// @Produce json
// @Param query query string true "Search term"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} utils.StandardResponse "Matches"
// @Failure 400 {object} utils.StandardResponse "Missing query"
// @Router /search/translations [get]
func (h *TranslationHandler) SearchTranslations(c *fiber.Ctx) error {
	ctx := c.Context()

	query := c.Query("query")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "query is required")
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	results, err := h.service.Search(ctx, query, limit)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Translation search failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Search failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed successfully", fiber.Map{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

// TestTranslation godoc
// @Summary Run the canned translation sweep
// @Description Pushes a fixed set of taxi phrases through the chain
// @Tags translation
// @Produce json
// @Success 200 {object} utils.StandardResponse "Sweep report"
// @Router /test-translation [get]
func (h *TranslationHandler) TestTranslation(c *fiber.Ctx) error {
	report := h.service.TestTranslation(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation test completed", report)
}
