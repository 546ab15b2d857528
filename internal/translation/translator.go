package translation

import "context"

// Translator is a single translation strategy. Remote providers return an
// error on any service failure; the dictionary fallback never does.
type Translator interface {
	// Name identifies the strategy in logs.
	Name() string

	// Translate translates text between ISO 639-1 language codes.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
