// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// # Overview
//
// The backend implements the tensor.Backend compute surface with:
//   - Pure Go kernels (no CGO)
//   - Float32 and Float64 support, bool masks
//   - NumPy-compatible broadcasting
//   - Chunked multi-goroutine execution for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/grind-ml/grind/backend/cpu"
//	    "github.com/grind-ml/grind/tensor"
//	)
//
//	func main() {
//	    b := cpu.New()
//	    x := tensor.Full[float64](tensor.Shape{4, 24, 3}, 1.0, b)
//	    y := x.MulScalar(3)
//	    _ = y
//	}
//
// # Thread Safety
//
// The backend holds no mutable state. Operations on distinct tensors may
// run concurrently; internal worker goroutines are always joined before an
// operation returns.
package cpu
