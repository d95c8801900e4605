package cpu

import (
	"fmt"

	"github.com/grind-ml/grind/internal/tensor"
)

// Lower returns a < b element-wise as a bool tensor, with broadcasting.
func (cpu *Backend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.compareOut("lower", a, b)
	switch a.DType() {
	case tensor.Float32:
		compareKernel(cpu.par, out.AsBool(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat32,
			func(x, y float32) bool { return x < y })
	case tensor.Float64:
		compareKernel(cpu.par, out.AsBool(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat64,
			func(x, y float64) bool { return x < y })
	}
	return out
}

// Equal returns a == b element-wise as a bool tensor, with broadcasting.
// NaN compares unequal to everything, including itself.
func (cpu *Backend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.compareOut("equal", a, b)
	switch a.DType() {
	case tensor.Float32:
		compareKernel(cpu.par, out.AsBool(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat32,
			func(x, y float32) bool { return x == y })
	case tensor.Float64:
		compareKernel(cpu.par, out.AsBool(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat64,
			func(x, y float64) bool { return x == y })
	}
	return out
}

func (cpu *Backend) compareOut(name string, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: operand dtypes differ: %s vs %s", name, a.DType(), b.DType()))
	}
	if !a.DType().IsFloat() {
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
	outShape, _, err := tensor.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return tensor.MustNewRaw(outShape, tensor.Bool)
}
