package cpu

import (
	"fmt"

	"github.com/grind-ml/grind/internal/tensor"
)

// Mul performs element-wise multiplication with broadcasting.
func (cpu *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.binaryOut("mul", a, b)
	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.par, out.AsFloat32(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat32,
			func(x, y float32) float32 { return x * y })
	case tensor.Float64:
		binaryKernel(cpu.par, out.AsFloat64(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat64,
			func(x, y float64) float64 { return x * y })
	}
	return out
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *Backend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.binaryOut("sub", a, b)
	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.par, out.AsFloat32(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat32,
			func(x, y float32) float32 { return x - y })
	case tensor.Float64:
		binaryKernel(cpu.par, out.AsFloat64(), a, b, out.Shape(), (*tensor.RawTensor).AsFloat64,
			func(x, y float64) float64 { return x - y })
	}
	return out
}

// MulScalar multiplies every element by scalar.
func (cpu *Backend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	out := tensor.MustNewRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float32:
		s := float32(scalar)
		mapKernel(cpu.par, out.AsFloat32(), x.AsFloat32(), func(v float32) float32 { return v * s })
	case tensor.Float64:
		mapKernel(cpu.par, out.AsFloat64(), x.AsFloat64(), func(v float64) float64 { return v * scalar })
	default:
		panic(fmt.Sprintf("mulscalar: unsupported dtype %s", x.DType()))
	}
	return out
}

// binaryOut validates a float binary operation and allocates its result.
func (cpu *Backend) binaryOut(name string, a, b *tensor.RawTensor) *tensor.RawTensor {
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
	return tensor.MustNewRaw(outShape, a.DType())
}
