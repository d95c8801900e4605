// Package cpu implements the pure-Go CPU compute backend.
package cpu

import (
	"github.com/grind-ml/grind/internal/parallel"
	"github.com/grind-ml/grind/internal/tensor"
)

// Backend implements tensor.Backend with vectorized Go loops. Large
// elementwise operations are chunked across goroutines; every operation
// joins its workers before returning, so the backend is safe for concurrent
// use and each call behaves synchronously.
type Backend struct {
	par parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *Backend {
	return &Backend{par: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend that never spawns goroutines.
func NewSequential() *Backend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = false
	return &Backend{par: cfg}
}

// Name returns the backend name.
func (cpu *Backend) Name() string {
	return "cpu"
}

var _ tensor.Backend = (*Backend)(nil)
