package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"axdesc/internal/domain"
	"axdesc/internal/domain/entities"
)

// ParseContextSpec parses the compact context notation used on the command
// line: "kind" or "kind:index/count". Table cells are not expressible.
func ParseContextSpec(spec string) (entities.Context, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == entities.KindNone {
		return nil, nil
	}

	kind, position, hasPosition := strings.Cut(spec, ":")
	if kind == entities.KindDataTableCell {
		return nil, fmt.Errorf("%w: %q needs a fixture file", domain.ErrUnknownContext, kind)
	}
	if !hasPosition {
		return positionalContext(kind, 0, 0)
	}

	indexStr, countStr, ok := strings.Cut(position, "/")
	if !ok {
		return nil, fmt.Errorf("%w: %q: expected index/count", domain.ErrUnknownContext, spec)
	}
	index, err := strconv.Atoi(strings.TrimSpace(indexStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: index: %v", domain.ErrUnknownContext, spec, err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: count: %v", domain.ErrUnknownContext, spec, err)
	}
	return positionalContext(kind, index, count)
}
