package output

import (
	"golang.org/x/text/language"

	"axdesc/internal/domain/entities"
)

// Translator exposes a minimal i18n contract for announced phrases.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// A message missing from both the locale and the default language is an
	// error.
	T(locale, key string, data map[string]any) (string, error)
}

// Catalog is a translator that can list the languages it has messages for.
type Catalog interface {
	T
	// Languages lists the languages with a loaded catalog.
	Languages() []language.Tag
	// DefaultLanguage is the configured fallback language. It may have no
	// catalog of its own.
	DefaultLanguage() language.Tag
}

// StringTable resolves the phrase set for a locale. Lookups must be free of
// side effects and safe for concurrent use.
type StringTable interface {
	Lookup(locale string) entities.StringSet
}

// NumberFormatter renders integers for a locale. An empty locale selects the
// formatter's default.
type NumberFormatter interface {
	FormatInt(locale string, n int) string
}
