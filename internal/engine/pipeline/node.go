package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/adapters/stylelint"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/adapters/testrunner"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stylekit/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CleanerNodeID,
			fs.ResolverNodeID,
			stylelint.NodeID,
			testrunner.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			cleaner, err := graft.Dep[ports.Cleaner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}

			linter, err := graft.Dep[ports.Linter](ctx)
			if err != nil {
				return nil, err
			}

			tests, err := graft.Dep[ports.TestRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(cleaner, linter, resolver, tests, log, telemetry), nil
		},
	})
}
