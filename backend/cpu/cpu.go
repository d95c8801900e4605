// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/grind-ml/grind/internal/backend/cpu"
	"github.com/grind-ml/grind/tensor"
)

// Backend is the pure-Go CPU backend.
//
// Large elementwise operations are chunked across goroutines; every
// operation joins its workers before returning, so each call behaves
// synchronously and the backend is safe for concurrent use.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend with default parallelism.
//
// Example:
//
//	b := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 5, 1}, b)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never spawns goroutines. Useful
// for deterministic profiling and for embedding in already-parallel callers.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
