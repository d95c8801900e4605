package tensor

import "fmt"

// Shape holds the dimensions of a tensor. Shape{4, 12, 3} describes a
// rank-3 tensor of 4 samples, 12 timesteps and 3 channels.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total element count. A rank-0 shape is a scalar
// with one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension %d at axis %d (must be > 0)", dim, i)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Strides returns row-major strides for the shape: stride[i] is the flat
// distance between consecutive indices along axis i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// Broadcast computes the NumPy-style broadcast of two shapes. Axes are
// aligned from the right; a missing or size-1 axis stretches to match the
// other operand. The second return value reports whether any stretching is
// required.
func Broadcast(a, b Shape) (Shape, bool, error) {
	rank := max(len(a), len(b))
	out := make(Shape, rank)
	stretched := false

	for i := 0; i < rank; i++ {
		ad, bd := 1, 1
		if j := len(a) - rank + i; j >= 0 {
			ad = a[j]
		}
		if j := len(b) - rank + i; j >= 0 {
			bd = b[j]
		}

		switch {
		case ad == bd:
			out[i] = ad
		case ad == 1:
			out[i] = bd
			stretched = true
		case bd == 1:
			out[i] = ad
			stretched = true
		default:
			return nil, false, fmt.Errorf("shapes %v and %v are not broadcastable (axis %d: %d vs %d)", a, b, i, ad, bd)
		}
	}

	return out, stretched, nil
}
