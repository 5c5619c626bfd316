// Package axdesc synthesizes what a screen reader announces for a single UI
// element: a description and an optional hint.
//
// Callers supply the element's already-extracted label, value, hint and
// traits as a Node, plus an optional Context describing its place in a table,
// list, landmark, tab group or series:
//
//	s, err := axdesc.New(axdesc.Options{})
//	if err != nil {
//		return err
//	}
//	res := s.Synthesize(axdesc.Node{
//		Label:  "Submit",
//		Traits: axdesc.NewTraits(axdesc.TraitButton),
//	}, nil)
//	// res.Description == "Submit. Button."
//
// Synthesis is pure: identical inputs give identical outputs, inputs are never
// mutated, and a Synthesizer may be shared between goroutines.
package axdesc
