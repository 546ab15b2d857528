package translation

import (
	"context"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// UnavailableMarker prefixes text that could not be translated by any
// strategy, including the dictionary.
const UnavailableMarker = "[Translation Unavailable]"

// FallbackTranslator is the terminal strategy of the degrade chain. It
// matches against the phrase dictionary: exact phrase, then first partial
// phrase in definition order, then word-by-word substitution. It never
// returns an error; worst case the original text comes back marked
// unavailable.
type FallbackTranslator struct {
	dict   *Dictionary
	logger *logrus.Logger
}

func NewFallbackTranslator(dict *Dictionary, logger *logrus.Logger) *FallbackTranslator {
	if logger == nil {
		logger = logrus.New()
	}
	return &FallbackTranslator{
		dict:   dict,
		logger: logger,
	}
}

func (t *FallbackTranslator) Name() string {
	return "dictionary"
}

func (t *FallbackTranslator) Translate(_ context.Context, text, sourceLang, targetLang string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if translation, ok := t.dict.Lookup(sourceLang, targetLang, normalized); ok {
		return translation, nil
	}

	for _, phrase := range t.dict.Phrases(sourceLang, targetLang) {
		if strings.Contains(normalized, phrase) {
			translation, _ := t.dict.Lookup(sourceLang, targetLang, phrase)
			return translation, nil
		}
	}

	words := strings.Fields(normalized)
	translated := make([]string, 0, len(words))
	for _, word := range words {
		clean := stripNonAlnum(word)
		if translation, ok := t.dict.Lookup(sourceLang, targetLang, clean); ok {
			translated = append(translated, translation)
		} else {
			translated = append(translated, word)
		}
	}

	result := strings.Join(translated, " ")
	if result == normalized {
		t.logger.WithFields(logrus.Fields{
			"source_lang": sourceLang,
			"target_lang": targetLang,
		}).Debug("No dictionary match, marking translation unavailable")
		return UnavailableMarker + " " + text, nil
	}
	return result, nil
}

func stripNonAlnum(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
