package entities

import "math"

// NoPosition marks a table row or column that is not a real position. Zero and
// negative values are real (0-indexed) positions and are not range-checked.
const NoPosition = math.MaxInt

// Context is the structural role of an element inside a larger construct. A
// nil Context means the element has none.
//
// The set of variants is closed; see the types below.
type Context interface {
	// HidesButtonTrait reports whether the "Button." specifier is suppressed.
	HidesButtonTrait() bool
	// ShowsTabTrait reports whether the "Tab." specifier is added.
	ShowsTabTrait() bool

	isContext()
}

// DataTableCell places the element in a data table.
type DataTableCell struct {
	Row           int
	Column        int
	RowSpan       int
	ColumnSpan    int
	IsFirstInRow  bool
	RowHeaders    []Header
	ColumnHeaders []Header
}

// Series places the element at Index of Count in a series. Index is announced
// as given.
type Series struct {
	Index int
	Count int
}

// Tab places the element at Index of Count in a tab group.
type Tab struct {
	Index int
	Count int
}

// TabBarItem places the element at Index of Count in a tab bar. Item is an
// opaque reference to the bar item supplied by the hierarchy walker.
type TabBarItem struct {
	Index int
	Count int
	Item  any
}

type (
	ListStart     struct{}
	ListEnd       struct{}
	LandmarkStart struct{}
	LandmarkEnd   struct{}
)

func (DataTableCell) HidesButtonTrait() bool { return false }
func (Series) HidesButtonTrait() bool        { return false }
func (Tab) HidesButtonTrait() bool           { return true }
func (TabBarItem) HidesButtonTrait() bool    { return false }
func (ListStart) HidesButtonTrait() bool     { return false }
func (ListEnd) HidesButtonTrait() bool       { return false }
func (LandmarkStart) HidesButtonTrait() bool { return false }
func (LandmarkEnd) HidesButtonTrait() bool   { return false }

func (DataTableCell) ShowsTabTrait() bool { return false }
func (Series) ShowsTabTrait() bool        { return false }
func (Tab) ShowsTabTrait() bool           { return true }
func (TabBarItem) ShowsTabTrait() bool    { return true }
func (ListStart) ShowsTabTrait() bool     { return false }
func (ListEnd) ShowsTabTrait() bool       { return false }
func (LandmarkStart) ShowsTabTrait() bool { return false }
func (LandmarkEnd) ShowsTabTrait() bool   { return false }

func (DataTableCell) isContext() {}
func (Series) isContext()        {}
func (Tab) isContext()           {}
func (TabBarItem) isContext()    {}
func (ListStart) isContext()     {}
func (ListEnd) isContext()       {}
func (LandmarkStart) isContext() {}
func (LandmarkEnd) isContext()   {}

// Context kind names, as used in fixtures and logs.
const (
	KindNone          = "none"
	KindDataTableCell = "dataTableCell"
	KindSeries        = "series"
	KindTab           = "tab"
	KindTabBarItem    = "tabBarItem"
	KindListStart     = "listStart"
	KindListEnd       = "listEnd"
	KindLandmarkStart = "landmarkStart"
	KindLandmarkEnd   = "landmarkEnd"
)

// ContextKind returns the variant name of ctx.
func ContextKind(ctx Context) string {
	switch Normalize(ctx).(type) {
	case DataTableCell:
		return KindDataTableCell
	case Series:
		return KindSeries
	case Tab:
		return KindTab
	case TabBarItem:
		return KindTabBarItem
	case ListStart:
		return KindListStart
	case ListEnd:
		return KindListEnd
	case LandmarkStart:
		return KindLandmarkStart
	case LandmarkEnd:
		return KindLandmarkEnd
	}
	return KindNone
}

// Normalize returns the value form of ctx. Pointer variants are dereferenced
// and a nil pointer becomes a nil Context.
func Normalize(ctx Context) Context {
	switch c := ctx.(type) {
	case *DataTableCell:
		if c == nil {
			return nil
		}
		return *c
	case *Series:
		if c == nil {
			return nil
		}
		return *c
	case *Tab:
		if c == nil {
			return nil
		}
		return *c
	case *TabBarItem:
		if c == nil {
			return nil
		}
		return *c
	case *ListStart:
		if c == nil {
			return nil
		}
		return *c
	case *ListEnd:
		if c == nil {
			return nil
		}
		return *c
	case *LandmarkStart:
		if c == nil {
			return nil
		}
		return *c
	case *LandmarkEnd:
		if c == nil {
			return nil
		}
		return *c
	}
	return ctx
}
