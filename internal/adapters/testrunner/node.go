package testrunner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/shell"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/stylekit/internal/engine/probe" //nolint:depguard // The built-in suite runs the probe
)

// NodeID is the unique identifier for the test runner node.
const NodeID graft.ID = "adapter.testrunner"

func init() {
	graft.Register(graft.Node[ports.TestRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, probe.NodeID},
		Run: func(ctx context.Context) (ports.TestRunner, error) {
			sh, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[*probe.Probe](ctx)
			if err != nil {
				return nil, err
			}

			return New(sh, p), nil
		},
	})
}
