package domain

import "time"

// Config is the resolved configuration of a run.
type Config struct {
	Pipeline *Pipeline
	Probe    ProbeOptions
	Watch    WatchOptions
}

// WatchOptions configure the watch loop.
type WatchOptions struct {
	Debounce time.Duration
}
