package cpu

import (
	"github.com/grind-ml/grind/internal/parallel"
	"github.com/grind-ml/grind/internal/tensor"
)

type float interface {
	~float32 | ~float64
}

// binaryKernel evaluates op over two float operands broadcast to outShape,
// writing into dst. Same-shape operands take the flat fast path.
func binaryKernel[T float](par parallel.Config, dst []T, a, b *tensor.RawTensor,
	outShape tensor.Shape, as func(*tensor.RawTensor) []T, op func(T, T) T,
) {
	av, bv := as(a), as(b)

	if a.Shape().Equal(b.Shape()) {
		parallel.For(len(dst), par, func(i int) {
			dst[i] = op(av[i], bv[i])
		})
		return
	}

	outStrides := outShape.Strides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	parallel.For(len(dst), par, func(i int) {
		dst[i] = op(av[srcIndex(i, outStrides, aStrides)], bv[srcIndex(i, outStrides, bStrides)])
	})
}

// compareKernel is binaryKernel for predicates: float operands, bool result.
func compareKernel[T float](par parallel.Config, dst []bool, a, b *tensor.RawTensor,
	outShape tensor.Shape, as func(*tensor.RawTensor) []T, cmp func(T, T) bool,
) {
	av, bv := as(a), as(b)

	if a.Shape().Equal(b.Shape()) {
		parallel.For(len(dst), par, func(i int) {
			dst[i] = cmp(av[i], bv[i])
		})
		return
	}

	outStrides := outShape.Strides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	parallel.For(len(dst), par, func(i int) {
		dst[i] = cmp(av[srcIndex(i, outStrides, aStrides)], bv[srcIndex(i, outStrides, bStrides)])
	})
}

// mapKernel evaluates a unary op element-wise into dst.
func mapKernel[In, Out any](par parallel.Config, dst []Out, src []In, op func(In) Out) {
	parallel.For(len(dst), par, func(i int) {
		dst[i] = op(src[i])
	})
}

// whereKernel selects xv or yv per element of the broadcast output
// according to cond.
func whereKernel[T any](par parallel.Config, dst []T, cond *tensor.RawTensor, x, y *tensor.RawTensor,
	outShape tensor.Shape, xv, yv []T,
) {
	cv := cond.AsBool()
	outStrides := outShape.Strides()
	condStrides := broadcastStrides(cond.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)

	parallel.For(len(dst), par, func(i int) {
		if cv[srcIndex(i, outStrides, condStrides)] {
			dst[i] = xv[srcIndex(i, outStrides, xStrides)]
		} else {
			dst[i] = yv[srcIndex(i, outStrides, yStrides)]
		}
	})
}
