package services

import (
	"bytes"
	"context"

	"taxi-translator-backend/internal/speech"

	"github.com/sirupsen/logrus"
)

type SpeechService interface {
	Transcribe(ctx context.Context, filename, contentType string, audio []byte) *speech.Result
}

type speechService struct {
	recognizer speech.Recognizer
	store      *AudioStore // nil when no object store is configured
	logger     *logrus.Logger
}

func NewSpeechService(recognizer speech.Recognizer, store *AudioStore, logger *logrus.Logger) SpeechService {
	return &speechService{
		recognizer: recognizer,
		store:      store,
		logger:     logger,
	}
}

// Transcribe archives the clip (best-effort) and delegates to the external
// recognizer. Recognizer failures are reported as a low-confidence result;
// only transport problems upstream of this call surface as HTTP errors.
func (s *speechService) Transcribe(ctx context.Context, filename, contentType string, audio []byte) *speech.Result {
	if s.store != nil {
		if _, err := s.store.Archive(ctx, filename, contentType, audio); err != nil {
			s.logger.WithError(err).Warn("Could not archive audio clip")
		}
	}

	result, err := s.recognizer.Recognize(ctx, filename, bytes.NewReader(audio))
	if err != nil {
		s.logger.WithError(err).Error("Speech recognition service unavailable")
		return &speech.Result{
			Text:       "",
			Confidence: speech.ConfidenceLow,
			Error:      "Speech recognition service error",
		}
	}
	return result
}
