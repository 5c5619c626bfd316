package entities

// StringSet is the fixed phrase set for one locale. Trait names end in
// terminal punctuation. Format fields are fmt templates with explicit argument
// indexes so translations may reorder them.
type StringSet struct {
	// BackDescriptor is the word a back button label is compared against.
	BackDescriptor string

	SelectedTraitName   string
	SelectedTraitFormat string // %[1]s description

	NotEnabledTraitName   string
	ButtonTraitName       string
	BackButtonTraitName   string
	SwitchButtonTraitName string
	SwitchOnState         string
	SwitchOffState        string
	SwitchMixedState      string
	TabTraitName          string
	TextEntryTraitName    string
	IsEditingTraitName    string
	HeaderTraitName       string
	LinkTraitName         string
	AdjustableTraitName   string
	ImageTraitName        string
	SearchFieldTraitName  string

	SwitchButtonHint       string
	SwitchButtonHintFormat string // %[1]s existing hint without its trailing period
	AdjustableHint         string
	AdjustableHintFormat   string // %[1]s existing hint without its trailing period
	TextEntryHint          string
	TextEntryEditingHint   string
	ScrollableTextHint     string

	SeriesFormat              string // %[1]s description, %[2]s index, %[3]s count
	DataTableRowSpanFormat    string // %[1]s span
	DataTableColumnSpanFormat string // %[1]s span
	DataTableRowFormat        string // %[1]s 1-indexed row
	DataTableColumnFormat     string // %[1]s 1-indexed column

	ListStartContext     string
	ListEndContext       string
	LandmarkStartContext string
	LandmarkEndContext   string
}
