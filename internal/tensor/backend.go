package tensor

// Backend is the compute interface behind tensor operations. The operation
// set is the surface the corruption routines compose: elementwise
// arithmetic, comparisons, NaN handling and conditional selection.
//
// Binary operations follow NumPy broadcasting rules. Operations panic on
// programmer errors (dtype misuse, incompatible shapes); they do not return
// errors for expected conditions.
type Backend interface {
	// Element-wise binary arithmetic (float tensors).
	Mul(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor

	// Element-wise arithmetic against a scalar (float tensors).
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Comparisons (float tensors, bool result).
	Lower(a, b *RawTensor) *RawTensor // a < b
	Equal(a, b *RawTensor) *RawTensor // a == b

	// NaN detection (float tensors, bool result).
	IsNaN(x *RawTensor) *RawTensor

	// Logical negation (bool tensors).
	Not(x *RawTensor) *RawTensor

	// Conditional selection: cond ? x : y, with broadcasting across all
	// three operands. cond must be bool; x and y must share a dtype.
	Where(cond, x, y *RawTensor) *RawTensor

	// Type conversion. Bool converts to 1/0; floats convert to true where
	// non-zero.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Name identifies the backend in diagnostics.
	Name() string
}
