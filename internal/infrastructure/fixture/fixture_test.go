package fixture

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axdesc/internal/domain"
	"axdesc/internal/domain/entities"
)

func TestLoadFile_TOML(t *testing.T) {
	got, err := LoadFile(filepath.Join("testdata", "elements.toml"))
	require.NoError(t, err)

	want := []Element{
		{
			Name: "submit",
			Node: entities.Node{Label: "Submit", Traits: entities.NewTraits(entities.TraitButton)},
		},
		{
			Name:    "photo",
			Node:    entities.Node{Label: "Photo", Locale: "fr", Traits: entities.NewTraits(entities.TraitImage, entities.TraitSelected)},
			Context: entities.Series{Index: 2, Count: 5},
		},
		{
			Name: "cell",
			Node: entities.Node{Label: "Q1"},
			Context: entities.DataTableCell{
				Row: 0, Column: 0, RowSpan: 2, ColumnSpan: 1, IsFirstInRow: true,
				RowHeaders:    []entities.Header{{Label: "Region"}},
				ColumnHeaders: []entities.Header{{Label: "Quarter", Value: "Q1"}},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	got, err := LoadFile(filepath.Join("testdata", "elements.yaml"))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "1", got[0].Node.Value)
	assert.True(t, got[0].Node.Traits.SwitchButton())
	assert.True(t, got[0].Node.Traits.Button())
	assert.Nil(t, got[0].Context)

	assert.Equal(t, entities.LandmarkEnd{}, got[1].Context)

	cell, ok := got[2].Context.(entities.DataTableCell)
	require.True(t, ok)
	assert.Equal(t, entities.NoPosition, cell.Row, "omitted row is not a position")
	assert.Equal(t, entities.NoPosition, cell.Column)
	assert.Equal(t, 3, cell.RowSpan)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("[[element]]\ntraits = [\"wiggly\"]\n"), FormatTOML)
	assert.True(t, errors.Is(err, domain.ErrUnknownTrait), "%v", err)

	_, err = Decode([]byte("[[element]]\n[element.context]\nkind = \"carousel\"\n"), FormatTOML)
	assert.True(t, errors.Is(err, domain.ErrUnknownContext), "%v", err)

	_, err = Decode([]byte("element: [{labl: typo}]\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("[[element]]\nlabl = \"typo\"\n"), FormatTOML)
	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict), "%v", err)

	_, err = Decode(nil, Format("json"))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFixture))
}

func TestDecode_Empty(t *testing.T) {
	got, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatForPath("a/b.json")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFixture))
}

func TestParseContextSpec(t *testing.T) {
	cases := map[string]entities.Context{
		"":               nil,
		"none":           nil,
		"series:2/5":     entities.Series{Index: 2, Count: 5},
		"tab:0/3":        entities.Tab{Index: 0, Count: 3},
		"tabBarItem:1/4": entities.TabBarItem{Index: 1, Count: 4},
		"listStart":      entities.ListStart{},
		"listEnd":        entities.ListEnd{},
		"landmarkStart":  entities.LandmarkStart{},
		" landmarkEnd ":  entities.LandmarkEnd{},
	}
	for spec, want := range cases {
		got, err := ParseContextSpec(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, want, got, spec)
	}

	for _, bad := range []string{"dataTableCell", "series:2", "series:x/5", "series:2/y", "grid:1/2"} {
		_, err := ParseContextSpec(bad)
		assert.True(t, errors.Is(err, domain.ErrUnknownContext), bad)
	}
}
