package fixture

import (
	"fmt"

	"axdesc/internal/domain"
	"axdesc/internal/domain/entities"
)

func elementToDomain(rec elementRecord) (Element, error) {
	traits, err := entities.ParseTraits(rec.Traits)
	if err != nil {
		return Element{}, err
	}
	ctx, err := contextToDomain(rec.Context)
	if err != nil {
		return Element{}, err
	}
	return Element{
		Name: rec.Name,
		Node: entities.Node{
			Label:  rec.Label,
			Value:  rec.Value,
			Hint:   rec.Hint,
			Traits: traits,
			Locale: rec.Locale,
		},
		Context: ctx,
	}, nil
}

func contextToDomain(rec *contextRecord) (entities.Context, error) {
	if rec == nil {
		return nil, nil
	}
	switch rec.Kind {
	case "", entities.KindNone:
		return nil, nil
	case entities.KindDataTableCell:
		return entities.DataTableCell{
			Row:           positionOrNone(rec.Row),
			Column:        positionOrNone(rec.Column),
			RowSpan:       rec.RowSpan,
			ColumnSpan:    rec.ColumnSpan,
			IsFirstInRow:  rec.FirstInRow,
			RowHeaders:    headersToDomain(rec.RowHeaders),
			ColumnHeaders: headersToDomain(rec.ColumnHeaders),
		}, nil
	}
	return positionalContext(rec.Kind, rec.Index, rec.Count)
}

// positionalContext builds the variants that carry at most an index/count
// payload.
func positionalContext(kind string, index, count int) (entities.Context, error) {
	switch kind {
	case entities.KindSeries:
		return entities.Series{Index: index, Count: count}, nil
	case entities.KindTab:
		return entities.Tab{Index: index, Count: count}, nil
	case entities.KindTabBarItem:
		return entities.TabBarItem{Index: index, Count: count}, nil
	case entities.KindListStart:
		return entities.ListStart{}, nil
	case entities.KindListEnd:
		return entities.ListEnd{}, nil
	case entities.KindLandmarkStart:
		return entities.LandmarkStart{}, nil
	case entities.KindLandmarkEnd:
		return entities.LandmarkEnd{}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownContext, kind)
}

// positionOrNone maps an omitted row or column to the NoPosition sentinel.
func positionOrNone(p *int) int {
	if p == nil {
		return entities.NoPosition
	}
	return *p
}

func headersToDomain(recs []headerRecord) []entities.Header {
	if len(recs) == 0 {
		return nil
	}
	headers := make([]entities.Header, len(recs))
	for i, h := range recs {
		headers[i] = entities.Header{Label: h.Label, Value: h.Value}
	}
	return headers
}
