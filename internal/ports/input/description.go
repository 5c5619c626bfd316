package input

import "axdesc/internal/domain/entities"

type DescriptionUseCase interface {
	// Synthesize builds the announced description and hint for node. ctx may
	// be nil.
	Synthesize(node entities.Node, ctx entities.Context) entities.Result
}
