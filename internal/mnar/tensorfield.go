package mnar

import (
	"fmt"
	"math/rand/v2"

	"github.com/grind-ml/grind/internal/tensor"
)

// tensorField adapts *tensor.Tensor to the Field surface by composing
// backend operations. Masks stay in the tensor's float element type, so a
// float32 input yields float32 masks.
type tensorField[T tensor.Float, B tensor.Backend] struct {
	t *tensor.Tensor[T, B]
}

func (f tensorField[T, B]) wrap(t *tensor.Tensor[T, B]) Field {
	return tensorField[T, B]{t}
}

func (f tensorField[T, B]) Dims() (int, int, int) {
	s := f.t.Shape()
	return s[0], s[1], s[2]
}

func (f tensorField[T, B]) ObservedMask() Field {
	return f.wrap(tensor.Cast[T](tensor.Not(f.t.IsNaN())))
}

func (f tensorField[T, B]) NaNToNum(fill float64) Field {
	fillT := tensor.Full[T](tensor.Shape{1}, T(fill), f.t.Backend())
	return f.wrap(tensor.Where(f.t.IsNaN(), fillT, f.t))
}

func (f tensorField[T, B]) Uniform(rng *rand.Rand) Field {
	return f.wrap(tensor.Rand[T](f.t.Shape(), rng, f.t.Backend()))
}

func (f tensorField[T, B]) Timeline(curve []float64) Field {
	vals := make([]T, len(curve))
	for i, v := range curve {
		vals[i] = T(v)
	}
	tl, err := tensor.FromSlice(vals, tensor.Shape{1, len(curve), 1}, f.t.Backend())
	if err != nil {
		panic(err)
	}
	// Shape {1, nl, 1} stretches across samples and channels wherever the
	// timeline meets a full-shape operand.
	return f.wrap(tl)
}

func (f tensorField[T, B]) MulElem(o Field) Field {
	return f.wrap(f.t.Mul(f.peer(o)))
}

func (f tensorField[T, B]) Sub(o Field) Field {
	return f.wrap(f.t.Sub(f.peer(o)))
}

func (f tensorField[T, B]) LessScaled(scale float64, threshold Field) Field {
	below := f.t.MulScalar(scale).Lower(f.peer(threshold))
	return f.wrap(tensor.Cast[T](below))
}

func (f tensorField[T, B]) MaskedFill(mask Field, fill float64) Field {
	b := f.t.Backend()
	zero := tensor.Zeros[T](tensor.Shape{1}, b)
	removed := f.peer(mask).Equal(zero)
	fillT := tensor.Full[T](tensor.Shape{1}, T(fill), b)
	return f.wrap(tensor.Where(removed, fillT, f.t))
}

func (f tensorField[T, B]) Mean() float64 {
	data := f.t.Data()
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum / float64(len(data))
}

func (f tensorField[T, B]) Unwrap() any {
	return f.t
}

func (f tensorField[T, B]) peer(o Field) *tensor.Tensor[T, B] {
	p, ok := o.(tensorField[T, B])
	if !ok {
		panic(fmt.Sprintf("mnar: mixed array kinds: %T vs %T", f.t, o.Unwrap()))
	}
	return p.t
}
