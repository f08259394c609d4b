package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/stylelint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/core/ports"
)

// NodeID is the unique identifier for the probe Graft node.
const NodeID graft.ID = "engine.probe"

func init() {
	graft.Register(graft.Node[*Probe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{stylelint.NodeID},
		Run: func(ctx context.Context) (*Probe, error) {
			linter, err := graft.Dep[ports.Linter](ctx)
			if err != nil {
				return nil, err
			}
			return New(linter), nil
		},
	})
}
