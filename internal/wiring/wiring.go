// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stylekit/internal/adapters/config"
	_ "go.trai.ch/stylekit/internal/adapters/fs"
	_ "go.trai.ch/stylekit/internal/adapters/logger"
	_ "go.trai.ch/stylekit/internal/adapters/shell"
	_ "go.trai.ch/stylekit/internal/adapters/stylelint"
	_ "go.trai.ch/stylekit/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/stylekit/internal/adapters/testrunner"
	_ "go.trai.ch/stylekit/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stylekit/internal/app"
	_ "go.trai.ch/stylekit/internal/engine/pipeline"
	_ "go.trai.ch/stylekit/internal/engine/probe"
)
