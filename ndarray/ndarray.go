// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray implements a dense row-major float64 array.
//
// Dense is the plain numeric container of the toolkit: a flat buffer plus a
// shape, with elementwise arithmetic backed by gonum and explicit-generator
// uniform sampling. Missing values are represented as NaN.
package ndarray

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrRagged reports a nested slice whose inner lengths disagree.
var ErrRagged = errors.New("ndarray: ragged nested slice")

// Dense is a dense float64 array of arbitrary rank.
type Dense struct {
	shape []int
	data  []float64
}

// New creates a Dense with the given shape over data. The slice is retained,
// not copied; len(data) must equal the shape's element count.
func New(shape []int, data []float64) (*Dense, error) {
	n := 1
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("ndarray: invalid dimension %d at axis %d", dim, i)
		}
		n *= dim
	}
	if n != len(data) {
		return nil, fmt.Errorf("ndarray: shape %v requires %d elements, got %d", shape, n, len(data))
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros creates a zero-filled Dense.
func Zeros(shape ...int) *Dense {
	d, err := New(shape, make([]float64, size(shape)))
	if err != nil {
		panic(err)
	}
	return d
}

// Full creates a Dense with every element set to value.
func Full(value float64, shape ...int) *Dense {
	d := Zeros(shape...)
	for i := range d.data {
		d.data[i] = value
	}
	return d
}

// FromNested converts a nested [samples][timesteps][channels] slice into a
// rank-3 Dense. Returns ErrRagged if inner lengths disagree.
func FromNested(rows [][][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 || len(rows[0][0]) == 0 {
		return nil, fmt.Errorf("ndarray: empty nested slice")
	}
	ns, nl, nc := len(rows), len(rows[0]), len(rows[0][0])

	data := make([]float64, 0, ns*nl*nc)
	for _, steps := range rows {
		if len(steps) != nl {
			return nil, fmt.Errorf("%w: expected %d timesteps, got %d", ErrRagged, nl, len(steps))
		}
		for _, channels := range steps {
			if len(channels) != nc {
				return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrRagged, nc, len(channels))
			}
			data = append(data, channels...)
		}
	}
	return New([]int{ns, nl, nc}, data)
}

// Uniform creates a Dense of independent uniform draws in [0, 1) pulled from
// rng in row-major order, one draw per element.
func Uniform(rng *rand.Rand, shape ...int) *Dense {
	d := Zeros(shape...)
	u := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	for i := range d.data {
		d.data[i] = u.Rand()
	}
	return d
}

// Shape returns a copy of the array's shape.
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// Rank returns the number of dimensions.
func (d *Dense) Rank() int {
	return len(d.shape)
}

// Len returns the total element count.
func (d *Dense) Len() int {
	return len(d.data)
}

// Data returns the underlying buffer in row-major order.
// Mutating the returned slice mutates the array.
func (d *Dense) Data() []float64 {
	return d.data
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	out, _ := New(d.shape, data)
	return out
}

// At returns the element at the given indices.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.flatIndex(indices)]
}

// Set stores value at the given indices.
func (d *Dense) Set(value float64, indices ...int) {
	d.data[d.flatIndex(indices)] = value
}

// Nested returns a rank-3 Dense as a nested [samples][timesteps][channels]
// slice. Panics if the array is not rank 3.
func (d *Dense) Nested() [][][]float64 {
	if len(d.shape) != 3 {
		panic(fmt.Sprintf("ndarray: Nested requires rank 3, got shape %v", d.shape))
	}
	ns, nl, nc := d.shape[0], d.shape[1], d.shape[2]
	out := make([][][]float64, ns)
	for s := range out {
		out[s] = make([][]float64, nl)
		for t := range out[s] {
			row := make([]float64, nc)
			copy(row, d.data[(s*nl+t)*nc:(s*nl+t+1)*nc])
			out[s][t] = row
		}
	}
	return out
}

func (d *Dense) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("ndarray: expected %d indices, got %d", len(d.shape), len(indices)))
	}
	idx := 0
	for i, ix := range indices {
		if ix < 0 || ix >= d.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d (size %d)", ix, i, d.shape[i]))
		}
		idx = idx*d.shape[i] + ix
	}
	return idx
}

// MulElem returns the element-wise product. Panics on shape mismatch.
func (d *Dense) MulElem(o *Dense) *Dense {
	d.matchShape(o)
	out := d.Clone()
	floats.Mul(out.data, o.data)
	return out
}

// Sub returns the element-wise difference d - o. Panics on shape mismatch.
func (d *Dense) Sub(o *Dense) *Dense {
	d.matchShape(o)
	out := d.Clone()
	floats.Sub(out.data, o.data)
	return out
}

// Scale returns the array with every element multiplied by c.
func (d *Dense) Scale(c float64) *Dense {
	out := d.Clone()
	floats.Scale(c, out.data)
	return out
}

// NaNToNum returns a copy with NaN entries replaced by fill.
func (d *Dense) NaNToNum(fill float64) *Dense {
	out := d.Clone()
	for i, v := range out.data {
		if math.IsNaN(v) {
			out.data[i] = fill
		}
	}
	return out
}

// FiniteMask returns a 0/1 array marking entries that are not NaN.
func (d *Dense) FiniteMask() *Dense {
	out := Zeros(d.shape...)
	for i, v := range d.data {
		if !math.IsNaN(v) {
			out.data[i] = 1
		}
	}
	return out
}

func (d *Dense) matchShape(o *Dense) {
	if len(d.shape) != len(o.shape) {
		panic(fmt.Sprintf("ndarray: shape mismatch %v vs %v", d.shape, o.shape))
	}
	for i := range d.shape {
		if d.shape[i] != o.shape[i] {
			panic(fmt.Sprintf("ndarray: shape mismatch %v vs %v", d.shape, o.shape))
		}
	}
}

func size(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}
