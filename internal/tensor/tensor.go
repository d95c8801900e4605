package tensor

import "fmt"

// Tensor is a generic tensor with element type T computed by backend B.
//
// Example:
//
//	b := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{2, 5, 1}, b)
//	y := x.MulScalar(3)
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New wraps a RawTensor in a typed Tensor.
// Panics if the raw dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	if raw.DType() != TypeOf[T]() {
		panic(fmt.Sprintf("raw tensor dtype %s does not match element type %s", raw.DType(), TypeOf[T]()))
	}
	return &Tensor[T, B]{raw: raw, backend: b}
}

// FromSlice creates a tensor by copying data into a fresh buffer.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, TypeOf[T]())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's runtime data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor for backend-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the compute backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed view of the tensor's buffer in row-major order.
// Mutating the returned slice mutates the tensor.
func (t *Tensor[T, B]) Data() []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case bool:
		return any(t.raw.AsBool()).([]T)
	default:
		panic("unsupported element type")
	}
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of range.
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.flatIndex(indices)]
}

// Set stores value at the given indices.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.flatIndex(indices)] = value
}

func (t *Tensor[T, B]) flatIndex(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of range for axis %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * t.raw.Strides()[i]
	}
	return offset
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.raw.Clone(), backend: t.backend}
}

// String returns a short description of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.DType(), t.Shape(), t.backend.Name())
}
