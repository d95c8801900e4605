package tensor

import "math/rand/v2"

// Zeros creates a tensor filled with zeros (false for bool).
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, TypeOf[T]())
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// Full creates a tensor with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a float tensor of independent uniform draws in [0, 1).
//
// The generator is explicit: callers that need reproducible draws seed their
// own *rand.Rand, and concurrent callers must not share one generator.
// Elements are drawn in row-major order, one draw per element.
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return t
}
