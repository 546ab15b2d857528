package translation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFallback() *FallbackTranslator {
	return NewFallbackTranslator(NewDictionary(), nil)
}

func TestFallback_ExactMatch(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "hello", "en", "zu")
	req.NoError(err)
	req.Equal("Sawubona", out)
}

func TestFallback_ExactMatch_NormalizesCaseAndSpace(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "  HELLO  ", "en", "zu")
	req.NoError(err)
	req.Equal("Sawubona", out)
}

func TestFallback_PartialMatch_FirstPhraseInOrderWins(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	// "thank you" is defined before the bare word "thank", so the longer
	// phrase wins the partial scan.
	out, err := fb.Translate(context.Background(), "thank you my friend", "en", "zu")
	req.NoError(err)
	req.Equal("Ngiyabonga", out)
}

func TestFallback_PartialMatch_Phrase(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "so where are you going now", "en", "zu")
	req.NoError(err)
	req.Equal("Uya kuphi?", out)
}

func TestFallback_WordByWord_StripsPunctuation(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	// No phrase is a substring of "s.t.o.p", but stripping punctuation
	// from the word recovers a dictionary hit.
	out, err := fb.Translate(context.Background(), "s.t.o.p", "en", "zu")
	req.NoError(err)
	req.Equal("Uma", out)
}

func TestFallback_WordByWord_KeepsUnknownTokens(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "qqq s.t.o.p zzz", "en", "zu")
	req.NoError(err)
	req.Equal("qqq Uma zzz", out)
}

func TestFallback_NoMatch_ReturnsMarker(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "xyz123", "en", "zu")
	req.NoError(err)
	req.Equal(UnavailableMarker+" xyz123", out)
}

func TestFallback_UnsupportedPair_ReturnsMarker(t *testing.T) {
	req := require.New(t)
	fb := newTestFallback()

	out, err := fb.Translate(context.Background(), "hello", "en", "st")
	req.NoError(err)
	req.Equal(UnavailableMarker+" hello", out)
}
