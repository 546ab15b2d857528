package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"taxi-translator-backend/internal/speech"

	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	result *speech.Result
	err    error
}

func (r *stubRecognizer) Recognize(_ context.Context, _ string, audio io.Reader) (*speech.Result, error) {
	if _, err := io.ReadAll(audio); err != nil {
		return nil, err
	}
	return r.result, r.err
}

func TestSpeechService_Transcribe(t *testing.T) {
	req := require.New(t)
	svc := NewSpeechService(&stubRecognizer{
		result: &speech.Result{Text: "how much is the fare", Confidence: speech.ConfidenceHigh},
	}, nil, quietLogger())

	result := svc.Transcribe(context.Background(), "clip.wav", "audio/wav", []byte("riff"))
	req.Equal("how much is the fare", result.Text)
	req.Equal(speech.ConfidenceHigh, result.Confidence)
	req.Empty(result.Error)
}

func TestSpeechService_Transcribe_RecognizerDown(t *testing.T) {
	req := require.New(t)
	svc := NewSpeechService(&stubRecognizer{err: errors.New("connection refused")}, nil, quietLogger())

	result := svc.Transcribe(context.Background(), "clip.wav", "audio/wav", []byte("riff"))
	req.Empty(result.Text)
	req.Equal(speech.ConfidenceLow, result.Confidence)
	req.Equal("Speech recognition service error", result.Error)
}
