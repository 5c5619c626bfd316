package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"axdesc/internal/ports/output"
)

var _ output.NumberFormatter = (*Formatter)(nil)

// Formatter renders integers with the digits of a locale and no grouping
// separators.
type Formatter struct {
	defaultLanguage language.Tag
}

// NewFormatter returns a Formatter that uses defaultLocale when a call does
// not name one. An unparsable default falls back to English.
func NewFormatter(defaultLocale string) *Formatter {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{defaultLanguage: tag}
}

// FormatInt renders n for locale.
func (f *Formatter) FormatInt(locale string, n int) string {
	p := message.NewPrinter(f.tag(locale))
	return p.Sprintf("%v", number.Decimal(n, number.NoSeparator()))
}

func (f *Formatter) tag(locale string) language.Tag {
	if locale == "" {
		return f.defaultLanguage
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return f.defaultLanguage
	}
	return tag
}
