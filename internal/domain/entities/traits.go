package entities

import (
	"fmt"
	"strings"

	"axdesc/internal/domain"
)

// Trait is a single accessibility trait flag.
type Trait uint32

// Recognised traits. Bit positions are internal to this package and carry no
// platform meaning.
const (
	TraitSelected Trait = 1 << iota
	TraitNotEnabled
	TraitButton
	TraitBackButton
	TraitSwitchButton
	TraitTabBarItem
	TraitTextEntry
	TraitIsEditing
	TraitHeader
	TraitLink
	TraitAdjustable
	TraitImage
	TraitSearchField
	TraitScrollable
	TraitKeyboardKey
)

var traitNames = []struct {
	trait Trait
	name  string
}{
	{TraitSelected, "selected"},
	{TraitNotEnabled, "notEnabled"},
	{TraitButton, "button"},
	{TraitBackButton, "backButton"},
	{TraitSwitchButton, "switchButton"},
	{TraitTabBarItem, "tabBarItem"},
	{TraitTextEntry, "textEntry"},
	{TraitIsEditing, "isEditing"},
	{TraitHeader, "header"},
	{TraitLink, "link"},
	{TraitAdjustable, "adjustable"},
	{TraitImage, "image"},
	{TraitSearchField, "searchField"},
	{TraitScrollable, "scrollable"},
	{TraitKeyboardKey, "keyboardKey"},
}

// String returns the camelCase name of a single trait.
func (t Trait) String() string {
	for _, tn := range traitNames {
		if tn.trait == t {
			return tn.name
		}
	}
	return fmt.Sprintf("Trait(%#x)", uint32(t))
}

// ParseTrait maps a trait name (case-insensitive) to its flag.
func ParseTrait(name string) (Trait, error) {
	name = strings.TrimSpace(name)
	for _, tn := range traitNames {
		if strings.EqualFold(tn.name, name) {
			return tn.trait, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTrait, name)
}

// Traits is an unordered set of trait flags. Any combination is legal.
type Traits uint32

// NewTraits builds a set from the given flags.
func NewTraits(ts ...Trait) Traits {
	return Traits(0).With(ts...)
}

// ParseTraits builds a set from trait names.
func ParseTraits(names []string) (Traits, error) {
	var set Traits
	for _, name := range names {
		t, err := ParseTrait(name)
		if err != nil {
			return 0, err
		}
		set = set.With(t)
	}
	return set, nil
}

// Has reports whether t is in the set.
func (s Traits) Has(t Trait) bool {
	return uint32(s)&uint32(t) != 0
}

// HasAny reports whether any of ts is in the set.
func (s Traits) HasAny(ts ...Trait) bool {
	for _, t := range ts {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// With returns a copy of the set with ts added.
func (s Traits) With(ts ...Trait) Traits {
	for _, t := range ts {
		s |= Traits(t)
	}
	return s
}

// Names lists the trait names in the set, in declaration order.
func (s Traits) Names() []string {
	var names []string
	for _, tn := range traitNames {
		if s.Has(tn.trait) {
			names = append(names, tn.name)
		}
	}
	return names
}

func (s Traits) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}

// Named accessors.

func (s Traits) Selected() bool     { return s.Has(TraitSelected) }
func (s Traits) NotEnabled() bool   { return s.Has(TraitNotEnabled) }
func (s Traits) Button() bool       { return s.Has(TraitButton) }
func (s Traits) BackButton() bool   { return s.Has(TraitBackButton) }
func (s Traits) SwitchButton() bool { return s.Has(TraitSwitchButton) }
func (s Traits) TabBarItem() bool   { return s.Has(TraitTabBarItem) }
func (s Traits) TextEntry() bool    { return s.Has(TraitTextEntry) }
func (s Traits) IsEditing() bool    { return s.Has(TraitIsEditing) }
func (s Traits) Header() bool       { return s.Has(TraitHeader) }
func (s Traits) Link() bool         { return s.Has(TraitLink) }
func (s Traits) Adjustable() bool   { return s.Has(TraitAdjustable) }
func (s Traits) Image() bool        { return s.Has(TraitImage) }
func (s Traits) SearchField() bool  { return s.Has(TraitSearchField) }
func (s Traits) Scrollable() bool   { return s.Has(TraitScrollable) }
func (s Traits) KeyboardKey() bool  { return s.Has(TraitKeyboardKey) }
