package entities

// Node holds the already-extracted accessibility attributes of one UI element.
// Empty strings mean "no content".
type Node struct {
	Label  string
	Value  string
	Hint   string
	Traits Traits
	// Locale only drives number formatting; empty means the default locale.
	Locale string
}

// Header is a row or column header of a data table. Only its label and value
// are announced.
type Header struct {
	Label string
	Value string
}

// Result is the synthesized announcement for one element.
type Result struct {
	Description string
	Hint        *string
}

// HasHint reports whether a hint is present.
func (r Result) HasHint() bool {
	return r.Hint != nil
}

// HintOr returns the hint, or def when there is none.
func (r Result) HintOr(def string) string {
	if r.Hint == nil {
		return def
	}
	return *r.Hint
}
