package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"axdesc/internal/domain/entities"
	"axdesc/internal/logging"
	"axdesc/internal/ports/input"
	"axdesc/internal/ports/output"
)

var _ input.DescriptionUseCase = (*DescriptionService)(nil)

// DescriptionService synthesizes the description and hint a screen reader
// announces for an element. It holds no per-call state and is safe for
// concurrent use.
type DescriptionService struct {
	table          output.StringTable
	numbers        output.NumberFormatter
	rawSwitchValue bool
	logger         *zap.Logger
}

// Option configures a DescriptionService.
type Option func(*DescriptionService)

// WithRawSwitchValue makes switch buttons announce their value when it is not
// one of the recognised states ("1", "0", "2"). Newer platform releases read
// the value; older ones omit it.
func WithRawSwitchValue(enabled bool) Option {
	return func(s *DescriptionService) {
		s.rawSwitchValue = enabled
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *DescriptionService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewDescriptionService(table output.StringTable, numbers output.NumberFormatter, opts ...Option) *DescriptionService {
	s := &DescriptionService{
		table:   table,
		numbers: numbers,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize applies the announcement rules in order. Each stage may rewrite
// the description and hint produced by the previous ones.
func (s *DescriptionService) Synthesize(node entities.Node, ctx entities.Context) entities.Result {
	ctx = entities.Normalize(ctx)
	strs := s.table.Lookup(node.Locale)
	traits := node.Traits

	description := node.Label
	if hidesLabel(node, strs) {
		description = ""
	}
	hint := nonEmpty(node.Hint)

	descriptionContainsContext := false
	if cell, ok := ctx.(entities.DataTableCell); ok {
		description = s.tableCellDescription(description, cell, node.Locale, strs)
		descriptionContainsContext = true
	}

	if node.Value != "" && !hidesValue(traits) {
		switch {
		case description == "":
			description = node.Value
		case descriptionContainsContext:
			description += " " + node.Value
		default:
			description += ": " + node.Value
		}
	}

	if traits.Selected() {
		if description != "" {
			description = fmt.Sprintf(strs.SelectedTraitFormat, description)
		} else {
			description = strs.SelectedTraitName
		}
	}

	specifiers := s.traitSpecifiers(node, ctx, strs)

	// An element with nothing else to say announces its hint instead.
	if description == "" {
		if hint != nil {
			description = *hint
		}
		hint = nil
	}

	if len(specifiers) > 0 {
		joined := strings.Join(specifiers, " ")
		if description != "" {
			description = withTrailingPeriod(description) + " " + joined
		} else {
			description = joined
		}
	}

	description = s.contextDescription(description, ctx, node.Locale, strs)
	hint = hintDescription(node, hint, strs)

	if ce := s.logger.Check(zap.DebugLevel, "description synthesized"); ce != nil {
		ce.Write(
			zap.String("context", entities.ContextKind(ctx)),
			zap.Stringer("traits", traits),
			zap.Int("specifiers", len(specifiers)),
			zap.Bool("hint", hint != nil),
		)
	}

	return entities.Result{Description: description, Hint: hint}
}

// hidesLabel suppresses a back button label that only repeats "Back", since
// the back button specifier already says it.
func hidesLabel(node entities.Node, strs entities.StringSet) bool {
	return node.Traits.BackButton() && strings.EqualFold(node.Label, strs.BackDescriptor)
}

// hidesValue reports whether the value is left out of the description.
// Switch values are announced as a state specifier instead.
func hidesValue(traits entities.Traits) bool {
	return traits.SwitchButton()
}

func (s *DescriptionService) traitSpecifiers(node entities.Node, ctx entities.Context, strs entities.StringSet) []string {
	traits := node.Traits
	var specifiers []string

	if traits.NotEnabled() {
		specifiers = append(specifiers, strs.NotEnabledTraitName)
	}

	hidesButton := traits.HasAny(entities.TraitKeyboardKey, entities.TraitSwitchButton, entities.TraitTabBarItem, entities.TraitBackButton) ||
		(ctx != nil && ctx.HidesButtonTrait())
	if traits.Button() && !hidesButton {
		specifiers = append(specifiers, strs.ButtonTraitName)
	}

	if traits.BackButton() {
		specifiers = append(specifiers, strs.BackButtonTraitName)
	}

	if traits.SwitchButton() {
		// Without the button trait the switch name is not read, but its state is.
		if traits.Button() {
			specifiers = append(specifiers, strs.SwitchButtonTraitName)
		}
		switch node.Value {
		case "1":
			specifiers = append(specifiers, strs.SwitchOnState)
		case "0":
			specifiers = append(specifiers, strs.SwitchOffState)
		case "2":
			specifiers = append(specifiers, strs.SwitchMixedState)
		default:
			if s.rawSwitchValue && node.Value != "" {
				specifiers = append(specifiers, node.Value)
			}
		}
	}

	if traits.TabBarItem() || (ctx != nil && ctx.ShowsTabTrait()) {
		specifiers = append(specifiers, strs.TabTraitName)
	}

	if traits.TextEntry() {
		specifiers = append(specifiers, strs.TextEntryTraitName)
		if traits.IsEditing() {
			specifiers = append(specifiers, strs.IsEditingTraitName)
		}
	}

	if traits.Header() {
		specifiers = append(specifiers, strs.HeaderTraitName)
	}
	if traits.Link() {
		specifiers = append(specifiers, strs.LinkTraitName)
	}
	if traits.Adjustable() {
		specifiers = append(specifiers, strs.AdjustableTraitName)
	}
	if traits.Image() {
		specifiers = append(specifiers, strs.ImageTraitName)
	}
	if traits.SearchField() {
		specifiers = append(specifiers, strs.SearchFieldTraitName)
	}

	return specifiers
}

// hintDescription derives the final hint. The rules are exclusive and checked
// in order: switch, text entry, adjustable.
func hintDescription(node entities.Node, hint *string, strs entities.StringSet) *string {
	traits := node.Traits
	hintOnly := node.Hint != "" && node.Label == "" && node.Value == ""

	switch {
	case traits.SwitchButton() && !traits.NotEnabled():
		return chainHint(hint, strs.SwitchButtonHint, strs.SwitchButtonHintFormat)

	case traits.TextEntry() && !traits.NotEnabled():
		switch {
		case traits.IsEditing():
			return stringPtr(strs.TextEntryEditingHint)
		case traits.Scrollable():
			return stringPtr(strs.ScrollableTextHint)
		default:
			return stringPtr(strs.TextEntryHint)
		}

	case traits.Adjustable() && !traits.NotEnabled() && !traits.SwitchButton() && !hintOnly:
		return chainHint(hint, strs.AdjustableHint, strs.AdjustableHintFormat)
	}

	return hint
}

// chainHint puts sentence after an existing hint, or uses it alone.
func chainHint(existing *string, sentence, format string) *string {
	if existing != nil && *existing != "" {
		return stringPtr(fmt.Sprintf(format, strings.TrimSuffix(*existing, ".")))
	}
	return stringPtr(sentence)
}

func withTrailingPeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringPtr(s string) *string {
	return &s
}
