package stylelint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/shell"
	"go.trai.ch/stylekit/internal/core/ports"
)

// NodeID is the unique identifier for the linter adapter node.
const NodeID graft.ID = "adapter.stylelint"

func init() {
	graft.Register(graft.Node[ports.Linter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Linter, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
