package domain

import "errors"

// Domain errors.
//
// Synthesis itself never fails; these cover the surfaces around it that read
// external input (catalogs, configuration, fixtures).
var (
	ErrUnknownTrait          = errors.New("unknown accessibility trait")
	ErrUnknownContext        = errors.New("unknown element context")
	ErrIncompleteStringTable = errors.New("string table is missing a phrase")
	ErrUnsupportedFixture    = errors.New("unsupported fixture format")
	ErrInvalidLocale         = errors.New("invalid locale identifier")
)
