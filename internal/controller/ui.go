// Package controller provides output adapters for displaying filtering results.
package controller

import (
	m "github.com/mouse-blink/cpre/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFilter StartMode = iota
	ModeEstimate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFilterMode sets the UI to report files that were rewritten.
func WithFilterMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFilter
	}
}

// WithEstimateMode sets the UI to report what a run would change.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeFilter}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying run results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplaySymbols(defined, undefined []string)
	DisplayResults(results []m.FileResult, err error) error
}
