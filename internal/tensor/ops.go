package tensor

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// MulScalar multiplies every element by scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// Lower compares element-wise and returns a bool tensor of t < other,
// with broadcasting.
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Lower(t.raw, other.raw), t.backend)
}

// Equal compares element-wise and returns a bool tensor of t == other,
// with broadcasting.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Equal(t.raw, other.raw), t.backend)
}

// IsNaN returns a bool tensor marking NaN elements.
func (t *Tensor[T, B]) IsNaN() *Tensor[bool, B] {
	return New[bool, B](t.backend.IsNaN(t.raw), t.backend)
}

// Not returns the logical negation of a bool tensor.
func Not[B Backend](t *Tensor[bool, B]) *Tensor[bool, B] {
	return New[bool, B](t.Backend().Not(t.Raw()), t.Backend())
}

// Where selects elements from x where cond is true and from y otherwise,
// broadcasting all three operands to a common shape.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](x.Backend().Where(cond.Raw(), x.Raw(), y.Raw()), x.Backend())
}

// Cast converts a tensor to element type To. Bool becomes 1/0; floats
// become true where non-zero.
func Cast[To DType, From DType, B Backend](t *Tensor[From, B]) *Tensor[To, B] {
	return New[To, B](t.Backend().Cast(t.Raw(), TypeOf[To]()), t.Backend())
}
