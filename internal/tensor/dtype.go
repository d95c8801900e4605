// Package tensor provides the core array types for the Grind corruption toolkit.
package tensor

// DType is the constraint for supported tensor element types.
//
// The toolkit operates on floating-point data and 0/1 masks, so the set is
// deliberately small: float32, float64 and bool.
type DType interface {
	~float32 | ~float64 | ~bool
}

// Float constrains operations that are only defined for floating-point
// tensors, such as uniform sampling and NaN handling.
type Float interface {
	~float32 | ~float64
}

// DataType carries runtime type information for a tensor.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// TypeOf returns the DataType corresponding to the generic element type T.
func TypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
