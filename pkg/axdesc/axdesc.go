package axdesc

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"axdesc/internal/application"
	"axdesc/internal/config"
	"axdesc/internal/domain/entities"
	"axdesc/internal/infrastructure/i18n"
	"axdesc/internal/infrastructure/numfmt"
	"axdesc/internal/logging"
)

type (
	Node          = entities.Node
	Header        = entities.Header
	Result        = entities.Result
	Trait         = entities.Trait
	Traits        = entities.Traits
	Context       = entities.Context
	DataTableCell = entities.DataTableCell
	Series        = entities.Series
	Tab           = entities.Tab
	TabBarItem    = entities.TabBarItem
	ListStart     = entities.ListStart
	ListEnd       = entities.ListEnd
	LandmarkStart = entities.LandmarkStart
	LandmarkEnd   = entities.LandmarkEnd
)

// NoPosition marks a table row or column that is not a real position.
const NoPosition = entities.NoPosition

const (
	TraitSelected     = entities.TraitSelected
	TraitNotEnabled   = entities.TraitNotEnabled
	TraitButton       = entities.TraitButton
	TraitBackButton   = entities.TraitBackButton
	TraitSwitchButton = entities.TraitSwitchButton
	TraitTabBarItem   = entities.TraitTabBarItem
	TraitTextEntry    = entities.TraitTextEntry
	TraitIsEditing    = entities.TraitIsEditing
	TraitHeader       = entities.TraitHeader
	TraitLink         = entities.TraitLink
	TraitAdjustable   = entities.TraitAdjustable
	TraitImage        = entities.TraitImage
	TraitSearchField  = entities.TraitSearchField
	TraitScrollable   = entities.TraitScrollable
	TraitKeyboardKey  = entities.TraitKeyboardKey
)

// NewTraits builds a trait set.
func NewTraits(ts ...Trait) Traits {
	return entities.NewTraits(ts...)
}

// ParseTraits builds a trait set from camelCase trait names.
func ParseTraits(names []string) (Traits, error) {
	return entities.ParseTraits(names)
}

// Options configure a Synthesizer. The zero value is usable.
type Options struct {
	// DefaultLocale formats numbers for nodes without a locale. Defaults to "en".
	DefaultLocale string
	// EmitRawSwitchValue announces switch values other than "1", "0" and "2".
	EmitRawSwitchValue bool
	// Logger receives debug traces. Defaults to a no-op logger.
	Logger *zap.Logger
}

// OptionsFromConfig maps a loaded configuration onto Options.
func OptionsFromConfig(cfg *config.Config, logger *zap.Logger) Options {
	return Options{
		DefaultLocale:      cfg.DefaultLocale,
		EmitRawSwitchValue: cfg.EmitRawSwitchValue,
		Logger:             logger,
	}
}

// Synthesizer produces descriptions and hints. It is safe for concurrent use.
type Synthesizer struct {
	svc *application.DescriptionService
}

// New wires the embedded string table and the locale-aware number formatter.
func New(opts Options) (*Synthesizer, error) {
	locale := opts.DefaultLocale
	if locale == "" {
		locale = "en"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	table, err := i18n.NewStringTable(i18n.NewTranslator(locale, logger))
	if err != nil {
		return nil, fmt.Errorf("axdesc: string table: %w", err)
	}

	svc := application.NewDescriptionService(
		table,
		numfmt.NewFormatter(locale),
		application.WithRawSwitchValue(opts.EmitRawSwitchValue),
		application.WithLogger(logger),
	)
	return &Synthesizer{svc: svc}, nil
}

// Synthesize returns the description and hint for node. ctx may be nil.
func (s *Synthesizer) Synthesize(node Node, ctx Context) Result {
	return s.svc.Synthesize(node, ctx)
}

var defaultSynthesizer = sync.OnceValues(func() (*Synthesizer, error) {
	return New(Options{})
})

// Synthesize uses a Synthesizer built with default options. It panics only if
// the embedded string table is broken.
func Synthesize(node Node, ctx Context) Result {
	s, err := defaultSynthesizer()
	if err != nil {
		panic(err)
	}
	return s.Synthesize(node, ctx)
}
