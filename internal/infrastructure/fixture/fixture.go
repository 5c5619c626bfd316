package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"axdesc/internal/domain"
	"axdesc/internal/domain/entities"
)

// Format is a fixture encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Element is one decoded fixture entry.
type Element struct {
	Name    string
	Node    entities.Node
	Context entities.Context
}

type fileRecord struct {
	Elements []elementRecord `toml:"element" yaml:"element"`
}

type elementRecord struct {
	Name    string         `toml:"name" yaml:"name"`
	Label   string         `toml:"label" yaml:"label"`
	Value   string         `toml:"value" yaml:"value"`
	Hint    string         `toml:"hint" yaml:"hint"`
	Traits  []string       `toml:"traits" yaml:"traits"`
	Locale  string         `toml:"locale" yaml:"locale"`
	Context *contextRecord `toml:"context" yaml:"context"`
}

type contextRecord struct {
	Kind          string         `toml:"kind" yaml:"kind"`
	Index         int            `toml:"index" yaml:"index"`
	Count         int            `toml:"count" yaml:"count"`
	Row           *int           `toml:"row" yaml:"row"`
	Column        *int           `toml:"column" yaml:"column"`
	RowSpan       int            `toml:"row_span" yaml:"row_span"`
	ColumnSpan    int            `toml:"column_span" yaml:"column_span"`
	FirstInRow    bool           `toml:"first_in_row" yaml:"first_in_row"`
	RowHeaders    []headerRecord `toml:"row_headers" yaml:"row_headers"`
	ColumnHeaders []headerRecord `toml:"column_headers" yaml:"column_headers"`
}

type headerRecord struct {
	Label string `toml:"label" yaml:"label"`
	Value string `toml:"value" yaml:"value"`
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFixture, path)
}

// LoadFile reads and decodes a fixture file.
func LoadFile(path string) ([]Element, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	elements, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return elements, nil
}

// Decode parses fixture data in the given format.
func Decode(data []byte, format Format) ([]Element, error) {
	var file fileRecord
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFixture, format)
	}

	elements := make([]Element, 0, len(file.Elements))
	for i, rec := range file.Elements {
		el, err := elementToDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, rec.Name, err)
		}
		elements = append(elements, el)
	}
	return elements, nil
}
