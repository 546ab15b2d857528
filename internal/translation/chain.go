package translation

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Chain tries remote providers in order and degrades to the dictionary
// fallback when all of them fail. From the caller's point of view it always
// produces some translation: provider failures are absorbed here and never
// propagate.
type Chain struct {
	providers []Translator
	fallback  *FallbackTranslator
	logger    *logrus.Logger
}

func NewChain(logger *logrus.Logger, fallback *FallbackTranslator, providers ...Translator) *Chain {
	if logger == nil {
		logger = logrus.New()
	}
	return &Chain{
		providers: providers,
		fallback:  fallback,
		logger:    logger,
	}
}

// Translate runs the degrade chain: first provider returning a non-empty
// result wins and later strategies are never invoked.
func (c *Chain) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	for _, provider := range c.providers {
		translated, err := provider.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"provider":    provider.Name(),
				"source_lang": sourceLang,
				"target_lang": targetLang,
			}).Warn("Translation provider failed")
			continue
		}
		if strings.TrimSpace(translated) == "" {
			c.logger.WithField("provider", provider.Name()).
				Warn("Translation provider returned empty result")
			continue
		}
		c.logger.WithFields(logrus.Fields{
			"provider":    provider.Name(),
			"source_lang": sourceLang,
			"target_lang": targetLang,
		}).Info("Translation succeeded")
		return translated
	}

	c.logger.WithFields(logrus.Fields{
		"source_lang": sourceLang,
		"target_lang": targetLang,
	}).Warn("All translation providers failed, using dictionary fallback")

	translated, _ := c.fallback.Translate(ctx, text, sourceLang, targetLang)
	return translated
}
