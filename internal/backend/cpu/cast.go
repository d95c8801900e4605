package cpu

import (
	"fmt"

	"github.com/grind-ml/grind/internal/tensor"
)

// Cast converts a tensor to a different data type. Bool converts to 1/0;
// floats convert to true where non-zero. Casting to the same dtype returns
// a fresh copy so results never alias their inputs.
func (cpu *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	out := tensor.MustNewRaw(x.Shape(), dtype)
	switch {
	case x.DType() == tensor.Float32 && dtype == tensor.Float64:
		mapKernel(cpu.par, out.AsFloat64(), x.AsFloat32(), func(v float32) float64 { return float64(v) })
	case x.DType() == tensor.Float32 && dtype == tensor.Bool:
		mapKernel(cpu.par, out.AsBool(), x.AsFloat32(), func(v float32) bool { return v != 0 })
	case x.DType() == tensor.Float64 && dtype == tensor.Float32:
		mapKernel(cpu.par, out.AsFloat32(), x.AsFloat64(), func(v float64) float32 { return float32(v) })
	case x.DType() == tensor.Float64 && dtype == tensor.Bool:
		mapKernel(cpu.par, out.AsBool(), x.AsFloat64(), func(v float64) bool { return v != 0 })
	case x.DType() == tensor.Bool && dtype == tensor.Float32:
		mapKernel(cpu.par, out.AsFloat32(), x.AsBool(), func(v bool) float32 {
			if v {
				return 1
			}
			return 0
		})
	case x.DType() == tensor.Bool && dtype == tensor.Float64:
		mapKernel(cpu.par, out.AsFloat64(), x.AsBool(), func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	default:
		panic(fmt.Sprintf("cast: unsupported conversion %s -> %s", x.DType(), dtype))
	}
	return out
}
