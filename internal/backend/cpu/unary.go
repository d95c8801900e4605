package cpu

import (
	"fmt"
	"math"

	"github.com/grind-ml/grind/internal/tensor"
)

// IsNaN returns a bool tensor marking NaN elements of a float tensor.
func (cpu *Backend) IsNaN(x *tensor.RawTensor) *tensor.RawTensor {
	out := tensor.MustNewRaw(x.Shape(), tensor.Bool)
	switch x.DType() {
	case tensor.Float32:
		mapKernel(cpu.par, out.AsBool(), x.AsFloat32(), func(v float32) bool {
			return v != v
		})
	case tensor.Float64:
		mapKernel(cpu.par, out.AsBool(), x.AsFloat64(), math.IsNaN)
	default:
		panic(fmt.Sprintf("isnan: unsupported dtype %s", x.DType()))
	}
	return out
}

// Not returns the logical negation of a bool tensor.
func (cpu *Backend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic(fmt.Sprintf("not: tensor must be bool, got %s", x.DType()))
	}
	out := tensor.MustNewRaw(x.Shape(), tensor.Bool)
	mapKernel(cpu.par, out.AsBool(), x.AsBool(), func(v bool) bool { return !v })
	return out
}
