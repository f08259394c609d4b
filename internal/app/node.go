package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylekit/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stylekit/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/stylekit/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/stylekit/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylekit/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/stylekit/internal/engine/pipeline"
	"go.trai.ch/stylekit/internal/engine/probe"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			probe.NodeID,
			watcher.WatcherNodeID,
			watcher.HashCacheNodeID,
			fs.ResolverNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
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

			return NewComponents(app, log, telemetry), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*probe.Probe](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	changes, err := graft.Dep[*watcher.HashCache](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
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

	return New(loader, runner, verifier, w, changes, resolver, log, telemetry), nil
}
