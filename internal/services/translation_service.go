package services

import (
	"context"
	"errors"
	"strings"

	"taxi-translator-backend/internal/models"
	"taxi-translator-backend/internal/repository"
	"taxi-translator-backend/internal/translation"

	"github.com/sirupsen/logrus"
)

var ErrEmptyText = errors.New("text cannot be empty")

// Demo sender/receiver pair recorded when the request carries no ids.
const (
	defaultSenderID   uint = 1
	defaultReceiverID uint = 2
)

type TranslateInput struct {
	Text       string
	SourceLang string
	TargetLang string
	SenderID   *uint
	ReceiverID *uint
}

// TestCaseResult is one row of the canned translation sweep.
type TestCaseResult struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Success    bool   `json:"success"`
	Service    string `json:"service"`
}

type TestTranslationReport struct {
	Results []TestCaseResult `json:"results"`
	Summary struct {
		Total      int `json:"total"`
		Successful int `json:"successful"`
		Failed     int `json:"failed"`
	} `json:"summary"`
}

type TranslationService interface {
	Translate(ctx context.Context, input TranslateInput) (*models.TranslationResult, error)
	Search(ctx context.Context, query string, limit int) ([]models.Message, error)
	TestTranslation(ctx context.Context) *TestTranslationReport
}

type translationService struct {
	chain    *translation.Chain
	messages repository.MessageRepository
	logger   *logrus.Logger
}

func NewTranslationService(chain *translation.Chain, messages repository.MessageRepository, logger *logrus.Logger) TranslationService {
	return &translationService{
		chain:    chain,
		messages: messages,
		logger:   logger,
	}
}

// Translate runs the degrade chain and logs the exchange. Persisting the
// message is best-effort: a store failure is logged and swallowed, never
// surfaced to the caller.
func (s *translationService) Translate(ctx context.Context, input TranslateInput) (*models.TranslationResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	s.logger.WithFields(logrus.Fields{
		"source_lang": input.SourceLang,
		"target_lang": input.TargetLang,
		"text_length": len(input.Text),
	}).Info("Translation request")

	translated := s.chain.Translate(ctx, input.Text, input.SourceLang, input.TargetLang)

	senderID := defaultSenderID
	receiverID := defaultReceiverID
	if input.SenderID != nil {
		senderID = *input.SenderID
	}
	if input.ReceiverID != nil {
		receiverID = *input.ReceiverID
	}

	message := &models.Message{
		SenderID:       &senderID,
		ReceiverID:     &receiverID,
		OriginalText:   input.Text,
		TranslatedText: translated,
		SourceLang:     input.SourceLang,
		TargetLang:     input.TargetLang,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		s.logger.WithError(err).Warn("Could not save translation to database")
	}

	return &models.TranslationResult{
		OriginalText:   input.Text,
		TranslatedText: translated,
		SourceLang:     input.SourceLang,
		TargetLang:     input.TargetLang,
	}, nil
}

func (s *translationService) Search(ctx context.Context, query string, limit int) ([]models.Message, error) {
	return s.messages.Search(ctx, query, limit)
}

// TestTranslation sweeps a fixed set of taxi phrases through the chain and
// reports which strategy ended up serving each one.
func (s *translationService) TestTranslation(ctx context.Context) *TestTranslationReport {
	cases := []struct {
		text, source, target string
	}{
		{"Hello, how much is the fare?", "en", "zu"},
		{"Thank you", "en", "xh"},
		{"Where are you going?", "en", "af"},
		{"Please stop here", "en", "st"},
		{"Good morning", "en", "tn"},
	}

	report := &TestTranslationReport{}
	for _, tc := range cases {
		translated := s.chain.Translate(ctx, tc.text, tc.source, tc.target)
		success := !strings.Contains(translated, translation.UnavailableMarker)
		service := "remote"
		if !success {
			service = "fallback"
		}
		report.Results = append(report.Results, TestCaseResult{
			Original:   tc.text,
			Translated: translated,
			Source:     tc.source,
			Target:     tc.target,
			Success:    success,
			Service:    service,
		})
		if success {
			report.Summary.Successful++
		} else {
			report.Summary.Failed++
		}
	}
	report.Summary.Total = len(report.Results)
	return report
}
