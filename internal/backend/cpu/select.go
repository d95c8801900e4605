package cpu

import (
	"fmt"

	"github.com/grind-ml/grind/internal/tensor"
)

// Where selects elements from x where cond is true and from y otherwise.
// All three operands broadcast to a common shape; cond must be bool and
// x and y must share a dtype.
func (cpu *Backend) Where(cond, x, y *tensor.RawTensor) *tensor.RawTensor {
	if cond.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", cond.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y dtypes differ: %s vs %s", x.DType(), y.DType()))
	}

	partial, _, err := tensor.Broadcast(cond.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.Broadcast(partial, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	out := tensor.MustNewRaw(outShape, x.DType())
	switch x.DType() {
	case tensor.Float32:
		whereKernel(cpu.par, out.AsFloat32(), cond, x, y, outShape, x.AsFloat32(), y.AsFloat32())
	case tensor.Float64:
		whereKernel(cpu.par, out.AsFloat64(), cond, x, y, outShape, x.AsFloat64(), y.AsFloat64())
	case tensor.Bool:
		whereKernel(cpu.par, out.AsBool(), cond, x, y, outShape, x.AsBool(), y.AsBool())
	}
	return out
}
