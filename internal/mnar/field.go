// Package mnar implements missing-not-at-random corruption of rank-3
// numeric arrays, driven by a periodic time-varying intensity function.
package mnar

import "math/rand/v2"

// Field is the capability surface the corruption algorithm needs from an
// array container: rank-3 shape introspection, elementwise arithmetic, NaN
// handling and uniform sampling. The algorithm is written once against this
// interface; each supported container contributes a thin adapter.
//
// Every operation returns a freshly allocated array of the same container
// kind. Binary operations panic when handed a peer of a different kind; the
// algorithm never mixes kinds because all intermediates derive from one
// input.
type Field interface {
	// Dims returns the (samples, timesteps, channels) extents.
	Dims() (ns, nl, nc int)

	// ObservedMask returns a 0/1 array marking entries that are not NaN.
	ObservedMask() Field

	// NaNToNum returns a copy with NaN entries replaced by fill.
	NaNToNum(fill float64) Field

	// Uniform returns an array of independent uniform draws in [0, 1),
	// pulled from rng in row-major order, one draw per element.
	Uniform(rng *rand.Rand) Field

	// Timeline broadcasts a per-timestep series across the sample and
	// channel axes. len(curve) must equal the timestep extent.
	Timeline(curve []float64) Field

	// MulElem returns the element-wise product.
	MulElem(o Field) Field

	// Sub returns the element-wise difference.
	Sub(o Field) Field

	// LessScaled returns a 0/1 array marking entries where
	// self*scale < threshold.
	LessScaled(scale float64, threshold Field) Field

	// MaskedFill returns a copy with fill written wherever mask is zero.
	// fill may be NaN.
	MaskedFill(mask Field, fill float64) Field

	// Mean returns the arithmetic mean of all elements.
	Mean() float64

	// Unwrap returns the underlying container (*ndarray.Dense or
	// *tensor.Tensor).
	Unwrap() any
}
