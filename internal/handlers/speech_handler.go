package handlers

import (
	"io"
	"strings"

	"taxi-translator-backend/internal/services"
	"taxi-translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SpeechHandler struct {
	service services.SpeechService
	logger  *logrus.Logger
}

func NewSpeechHandler(service services.SpeechService, logger *logrus.Logger) *SpeechHandler {
	return &SpeechHandler{
		service: service,
		logger:  logger,
	}
}

// SpeechToText godoc
// @Summary Transcribe an audio clip
// @Description Accept an uploaded audio file and return the recognized text with a confidence level
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio clip"
// @Success 200 {object} utils.StandardResponse "Recognition result"
// @Failure 400 {object} utils.StandardResponse "Missing or non-audio file"
// @Failure 500 {object} utils.StandardResponse "File handling failure"
// @Router /speech-to-text [post]
func (h *SpeechHandler) SpeechToText(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Audio file is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File must be an audio file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded audio")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Speech recognition failed")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read uploaded audio")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Speech recognition failed")
	}

	result := h.service.Transcribe(c.Context(), fileHeader.Filename, contentType, audio)

	return utils.SuccessResponse(c, fiber.StatusOK, "Speech processed", result)
}
