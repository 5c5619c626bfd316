package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"axdesc/internal/domain"
	"axdesc/internal/domain/entities"
	"axdesc/internal/ports/output"
)

var _ output.StringTable = (*StringTable)(nil)

// messageIDs binds each StringSet field to its catalog message.
var messageIDs = []struct {
	id    string
	field func(*entities.StringSet) *string
}{
	{"descriptor.back", func(s *entities.StringSet) *string { return &s.BackDescriptor }},

	{"trait.selected", func(s *entities.StringSet) *string { return &s.SelectedTraitName }},
	{"trait.selected.format", func(s *entities.StringSet) *string { return &s.SelectedTraitFormat }},
	{"trait.not_enabled", func(s *entities.StringSet) *string { return &s.NotEnabledTraitName }},
	{"trait.button", func(s *entities.StringSet) *string { return &s.ButtonTraitName }},
	{"trait.back_button", func(s *entities.StringSet) *string { return &s.BackButtonTraitName }},
	{"trait.switch_button", func(s *entities.StringSet) *string { return &s.SwitchButtonTraitName }},
	{"trait.switch_button.on", func(s *entities.StringSet) *string { return &s.SwitchOnState }},
	{"trait.switch_button.off", func(s *entities.StringSet) *string { return &s.SwitchOffState }},
	{"trait.switch_button.mixed", func(s *entities.StringSet) *string { return &s.SwitchMixedState }},
	{"trait.tab", func(s *entities.StringSet) *string { return &s.TabTraitName }},
	{"trait.text_entry", func(s *entities.StringSet) *string { return &s.TextEntryTraitName }},
	{"trait.is_editing", func(s *entities.StringSet) *string { return &s.IsEditingTraitName }},
	{"trait.header", func(s *entities.StringSet) *string { return &s.HeaderTraitName }},
	{"trait.link", func(s *entities.StringSet) *string { return &s.LinkTraitName }},
	{"trait.adjustable", func(s *entities.StringSet) *string { return &s.AdjustableTraitName }},
	{"trait.image", func(s *entities.StringSet) *string { return &s.ImageTraitName }},
	{"trait.search_field", func(s *entities.StringSet) *string { return &s.SearchFieldTraitName }},

	{"hint.switch_button", func(s *entities.StringSet) *string { return &s.SwitchButtonHint }},
	{"hint.switch_button.format", func(s *entities.StringSet) *string { return &s.SwitchButtonHintFormat }},
	{"hint.adjustable", func(s *entities.StringSet) *string { return &s.AdjustableHint }},
	{"hint.adjustable.format", func(s *entities.StringSet) *string { return &s.AdjustableHintFormat }},
	{"hint.text_entry", func(s *entities.StringSet) *string { return &s.TextEntryHint }},
	{"hint.text_entry.editing", func(s *entities.StringSet) *string { return &s.TextEntryEditingHint }},
	{"hint.text_entry.scrollable", func(s *entities.StringSet) *string { return &s.ScrollableTextHint }},

	{"context.series", func(s *entities.StringSet) *string { return &s.SeriesFormat }},
	{"context.table.row_span", func(s *entities.StringSet) *string { return &s.DataTableRowSpanFormat }},
	{"context.table.column_span", func(s *entities.StringSet) *string { return &s.DataTableColumnSpanFormat }},
	{"context.table.row", func(s *entities.StringSet) *string { return &s.DataTableRowFormat }},
	{"context.table.column", func(s *entities.StringSet) *string { return &s.DataTableColumnFormat }},
	{"context.list_start", func(s *entities.StringSet) *string { return &s.ListStartContext }},
	{"context.list_end", func(s *entities.StringSet) *string { return &s.ListEndContext }},
	{"context.landmark_start", func(s *entities.StringSet) *string { return &s.LandmarkStartContext }},
	{"context.landmark_end", func(s *entities.StringSet) *string { return &s.LandmarkEndContext }},
}

// StringTable holds one fully resolved StringSet per catalog language. It is
// immutable after construction.
type StringTable struct {
	sets     map[language.Tag]entities.StringSet
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// NewStringTable resolves every phrase for every language the catalog has
// loaded. It fails if any of them is missing a phrase. The catalog's default
// language is matched onto the loaded ones to pick the fallback set; with no
// match the first loaded catalog is the fallback.
func NewStringTable(t output.Catalog) (*StringTable, error) {
	tags := t.Languages()
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no catalog loaded", domain.ErrIncompleteStringTable)
	}

	sets := make(map[language.Tag]entities.StringSet, len(tags))
	for _, tag := range tags {
		set, err := resolveStringSet(t, tag)
		if err != nil {
			return nil, err
		}
		sets[tag] = set
	}

	matcher := language.NewMatcher(tags)
	fallback := tags[0]
	if _, index, confidence := matcher.Match(t.DefaultLanguage()); confidence != language.No {
		fallback = tags[index]
	}

	return &StringTable{
		sets:     sets,
		matcher:  matcher,
		tags:     tags,
		fallback: fallback,
	}, nil
}

func resolveStringSet(t output.T, tag language.Tag) (entities.StringSet, error) {
	var set entities.StringSet
	for _, m := range messageIDs {
		msg, err := t.T(tag.String(), m.id, nil)
		if err != nil {
			return entities.StringSet{}, fmt.Errorf("%w: %s (%s): %v", domain.ErrIncompleteStringTable, m.id, tag, err)
		}
		if msg == "" {
			return entities.StringSet{}, fmt.Errorf("%w: %s (%s) is empty", domain.ErrIncompleteStringTable, m.id, tag)
		}
		*m.field(&set) = msg
	}
	return set, nil
}

// Lookup returns the phrase set best matching locale. Empty, unparsable or
// unsupported locales resolve to the default language.
func (st *StringTable) Lookup(locale string) entities.StringSet {
	if locale == "" {
		return st.sets[st.fallback]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return st.sets[st.fallback]
	}
	_, index, confidence := st.matcher.Match(tag)
	if confidence == language.No {
		return st.sets[st.fallback]
	}
	return st.sets[st.tags[index]]
}
