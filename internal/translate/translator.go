package translate

import "context"

// Translator converts text between a fixed pair of locales.
type Translator interface {
	// Translate returns text translated from the source to the target
	// locale. Both are ISO 639-1 codes (e.g. "en", "id").
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
