// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the type-safe tensor API of the Grind toolkit.
//
// The package defines the core types for backend-agnostic array work:
//   - Tensor[T, B]: generic tensor over an element type and a compute backend
//   - RawTensor: untyped buffer representation shared by backends
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType: structural and runtime type information
//
// Element types are float32, float64 and bool; bool tensors carry
// comparison results and masks. Binary operations follow NumPy broadcasting
// rules. Uniform sampling takes an explicit *rand.Rand, so reproducibility
// and concurrent use are in the caller's hands.
//
// Example:
//
//	b := cpu.New()
//	x := tensor.Full[float64](tensor.Shape{2, 5, 1}, 1.0, b)
//	mask := tensor.Cast[float64](tensor.Not(x.IsNaN()))
package tensor
