// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/grind-ml/grind/internal/tensor"
)

// DType is the constraint for supported tensor element types:
// float32, float64 and bool.
type DType = tensor.DType

// Float constrains operations defined only for floating-point tensors.
type Float = tensor.Float

// DataType carries runtime type information for a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// Shape holds the dimensions of a tensor.
type Shape = tensor.Shape

// Backend is the compute interface behind tensor operations.
type Backend = tensor.Backend

// RawTensor is the untyped tensor representation shared by backends.
type RawTensor = tensor.RawTensor

// Tensor is a generic tensor with element type T computed by backend B.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Broadcast computes the NumPy-style broadcast of two shapes.
func Broadcast(a, b Shape) (Shape, bool, error) {
	return tensor.Broadcast(a, b)
}

// NewRaw allocates a zeroed RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// New wraps a RawTensor in a typed Tensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// FromSlice creates a tensor by copying data into a fresh buffer.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2, 1}, cpu.New())
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Zeros creates a tensor filled with zeros (false for bool).
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Full creates a tensor with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Rand creates a float tensor of independent uniform draws in [0, 1) pulled
// from rng in row-major order. Callers needing reproducible draws seed their
// own generator; concurrent callers must not share one.
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, rng, b)
}

// Where selects elements from x where cond is true and from y otherwise,
// broadcasting all three operands.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}

// Not returns the logical negation of a bool tensor.
func Not[B Backend](t *Tensor[bool, B]) *Tensor[bool, B] {
	return tensor.Not(t)
}

// Cast converts a tensor to element type To. Bool becomes 1/0; floats
// become true where non-zero.
func Cast[To DType, From DType, B Backend](t *Tensor[From, B]) *Tensor[To, B] {
	return tensor.Cast[To](t)
}
