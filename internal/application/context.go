package application

import (
	"fmt"
	"strings"

	"axdesc/internal/domain/entities"
)

// tableCellDescription prefixes the header fragments and appends span and
// position sentences. The terminal period is added even to an empty label.
func (s *DescriptionService) tableCellDescription(description string, cell entities.DataTableCell, locale string, strs entities.StringSet) string {
	var b strings.Builder

	for _, h := range cell.RowHeaders {
		b.WriteString(headerFragment(h))
	}
	for _, h := range cell.ColumnHeaders {
		b.WriteString(headerFragment(h))
	}

	b.WriteString(withTrailingPeriod(description))

	hasRow := cell.Row != entities.NoPosition
	hasColumn := cell.Column != entities.NoPosition

	if cell.RowSpan > 1 && hasRow {
		b.WriteString(" " + fmt.Sprintf(strs.DataTableRowSpanFormat, s.numbers.FormatInt(locale, cell.RowSpan)))
	}
	if cell.ColumnSpan > 1 && hasColumn {
		b.WriteString(" " + fmt.Sprintf(strs.DataTableColumnSpanFormat, s.numbers.FormatInt(locale, cell.ColumnSpan)))
	}
	if cell.IsFirstInRow && hasRow {
		b.WriteString(" " + fmt.Sprintf(strs.DataTableRowFormat, s.numbers.FormatInt(locale, cell.Row+1)))
	}
	if hasColumn {
		b.WriteString(" " + fmt.Sprintf(strs.DataTableColumnFormat, s.numbers.FormatInt(locale, cell.Column+1)))
	}

	return b.String()
}

func headerFragment(h entities.Header) string {
	switch {
	case h.Label != "" && h.Value != "":
		return h.Label + ": " + h.Value + ". "
	case h.Label != "":
		return h.Label + ". "
	case h.Value != "":
		return h.Value + ". "
	}
	return ""
}

// contextDescription applies the positional wrap of series-like contexts and
// the boundary sentences of lists and landmarks. Table cells were handled
// before the value merge.
func (s *DescriptionService) contextDescription(description string, ctx entities.Context, locale string, strs entities.StringSet) string {
	switch c := ctx.(type) {
	case entities.Series:
		return s.seriesDescription(description, c.Index, c.Count, locale, strs)
	case entities.Tab:
		return s.seriesDescription(description, c.Index, c.Count, locale, strs)
	case entities.TabBarItem:
		return s.seriesDescription(description, c.Index, c.Count, locale, strs)
	case entities.ListStart:
		return withTrailingPeriod(description) + " " + strs.ListStartContext
	case entities.ListEnd:
		return withTrailingPeriod(description) + " " + strs.ListEndContext
	case entities.LandmarkStart:
		return withTrailingPeriod(description) + " " + strs.LandmarkStartContext
	case entities.LandmarkEnd:
		return withTrailingPeriod(description) + " " + strs.LandmarkEndContext
	}
	return description
}

// seriesDescription announces the position as supplied by the caller; the
// index is not shifted.
func (s *DescriptionService) seriesDescription(description string, index, count int, locale string, strs entities.StringSet) string {
	return fmt.Sprintf(strs.SeriesFormat, description, s.numbers.FormatInt(locale, index), s.numbers.FormatInt(locale, count))
}
