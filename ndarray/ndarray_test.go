package ndarray_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grind-ml/grind/ndarray"
)

func TestNewShapeMismatch(t *testing.T) {
	_, err := ndarray.New([]int{2, 3}, make([]float64, 5))
	require.Error(t, err)

	_, err = ndarray.New([]int{2, 0, 3}, nil)
	require.Error(t, err)
}

func TestZerosAndFull(t *testing.T) {
	z := ndarray.Zeros(2, 3, 4)
	assert.Equal(t, []int{2, 3, 4}, z.Shape())
	assert.Equal(t, 24, z.Len())

	f := ndarray.Full(1.5, 2, 2)
	for _, v := range f.Data() {
		assert.Equal(t, 1.5, v)
	}
}

func TestFromNested(t *testing.T) {
	d, err := ndarray.FromNested([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, d.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, d.Data())

	// Round trip back to nested form.
	nested := d.Nested()
	assert.Equal(t, [][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}, nested)
}

func TestFromNestedRagged(t *testing.T) {
	_, err := ndarray.FromNested([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}},
	})
	require.ErrorIs(t, err, ndarray.ErrRagged)

	_, err = ndarray.FromNested([][][]float64{
		{{1, 2}, {3}},
	})
	require.ErrorIs(t, err, ndarray.ErrRagged)
}

func TestAtSet(t *testing.T) {
	d := ndarray.Zeros(2, 3, 2)
	d.Set(7.5, 1, 2, 0)
	assert.Equal(t, 7.5, d.At(1, 2, 0))
	assert.Equal(t, 0.0, d.At(0, 0, 0))

	assert.Panics(t, func() { d.At(2, 0, 0) })
	assert.Panics(t, func() { d.At(0, 0) })
}

func TestCloneIndependence(t *testing.T) {
	d := ndarray.Full(1, 2, 2)
	c := d.Clone()
	c.Data()[0] = 99

	assert.Equal(t, 1.0, d.Data()[0])
}

func TestElementwise(t *testing.T) {
	a, _ := ndarray.New([]int{2, 2}, []float64{1, 2, 3, 4})
	b, _ := ndarray.New([]int{2, 2}, []float64{10, 20, 30, 40})

	assert.Equal(t, []float64{10, 40, 90, 160}, a.MulElem(b).Data())
	assert.Equal(t, []float64{9, 18, 27, 36}, b.Sub(a).Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Data())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())

	other := ndarray.Zeros(4)
	assert.Panics(t, func() { a.MulElem(other) })
}

func TestNaNHandling(t *testing.T) {
	d, _ := ndarray.New([]int{1, 2, 2}, []float64{1, math.NaN(), 3, math.NaN()})

	filled := d.NaNToNum(-1)
	assert.Equal(t, []float64{1, -1, 3, -1}, filled.Data())

	mask := d.FiniteMask()
	assert.Equal(t, []float64{1, 0, 1, 0}, mask.Data())

	// Original still holds its NaNs.
	assert.True(t, math.IsNaN(d.Data()[1]))
}

func TestUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	d := ndarray.Uniform(rng, 4, 8, 2)

	assert.Equal(t, []int{4, 8, 2}, d.Shape())
	for _, v := range d.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	// Same seed, same draws.
	again := ndarray.Uniform(rand.New(rand.NewPCG(7, 11)), 4, 8, 2)
	assert.Equal(t, d.Data(), again.Data())
}
