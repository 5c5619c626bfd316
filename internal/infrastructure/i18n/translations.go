package i18n

import (
	"embed"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"axdesc/internal/logging"
	"axdesc/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// catalogs lists the embedded message files. Only English ships today; adding
// a language is a matter of adding its catalog here.
var catalogs = []string{"active.en.toml"}

// Ensure Translator implements the output.Catalog port.
var _ output.Catalog = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	languages       []language.Tag
	logger          *zap.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en"). An unparsable locale falls back to English.
//
// It loads translations from the embedded active.*.toml files.
func NewTranslator(defaultLocale string, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = logging.NewNop()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// The bundle always reports its default language, catalog or not, so the
	// loaded languages are tracked here.
	var loaded []language.Tag
	for _, file := range catalogs {
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			logger.Warn("i18n: failed to load catalog", zap.String("file", file), zap.Error(err))
			continue
		}
		if !slices.Contains(loaded, mf.Tag) {
			loaded = append(loaded, mf.Tag)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		languages:       loaded,
		logger:          logger,
	}
}

// DefaultLanguage is the language used when a locale has no catalog.
func (t *Translator) DefaultLanguage() language.Tag {
	return t.defaultLanguage
}

// Languages lists the languages that have a loaded catalog.
func (t *Translator) Languages() []language.Tag {
	return slices.Clone(t.languages)
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale;
// a message missing there too is logged and returned as an error.
func (t *Translator) T(locale, key string, data map[string]any) (string, error) {
	msg, err := t.localize(locale, key, data)
	if err != nil {
		t.logger.Warn("i18n: localize failed",
			zap.String("key", key),
			zap.String("locale", locale),
			zap.Error(err))
		return "", err
	}
	return msg, nil
}

func (t *Translator) localize(locale, key string, data map[string]any) (string, error) {
	if key == "" {
		return "", nil
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}
