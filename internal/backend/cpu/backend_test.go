package cpu

import (
	"math"
	"testing"

	"github.com/grind-ml/grind/internal/tensor"
)

func rawFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Float64)
	copy(raw.AsFloat64(), data)
	return raw
}

func rawBool(t *testing.T, shape tensor.Shape, data []bool) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Bool)
	copy(raw.AsBool(), data)
	return raw
}

func TestMulSameShape(t *testing.T) {
	b := New()
	a := rawFloat64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	c := rawFloat64(t, tensor.Shape{2, 2}, []float64{10, 20, 30, 40})

	got := b.Mul(a, c).AsFloat64()
	want := []float64{10, 40, 90, 160}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Mul = %v, want %v", got, want)
		}
	}

	// Operands keep their values.
	if a.AsFloat64()[0] != 1 {
		t.Error("Mul mutated its operand")
	}
}

func TestMulBroadcastTimeline(t *testing.T) {
	b := New()
	// A per-timestep series of shape (1, 3, 1) against a full (2, 3, 2).
	timeline := rawFloat64(t, tensor.Shape{1, 3, 1}, []float64{10, 20, 30})
	full := rawFloat64(t, tensor.Shape{2, 3, 2}, []float64{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2})

	out := b.Mul(full, timeline)
	if !out.Shape().Equal(tensor.Shape{2, 3, 2}) {
		t.Fatalf("broadcast shape = %v", out.Shape())
	}
	want := []float64{10, 10, 20, 20, 30, 30, 20, 20, 40, 40, 60, 60}
	got := out.AsFloat64()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Mul broadcast = %v, want %v", got, want)
		}
	}
}

func TestSub(t *testing.T) {
	b := New()
	a := rawFloat64(t, tensor.Shape{4}, []float64{5, 5, 5, 5})
	c := rawFloat64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})

	got := b.Sub(a, c).AsFloat64()
	want := []float64{4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sub = %v, want %v", got, want)
		}
	}
}

func TestMulScalar(t *testing.T) {
	b := New()
	a := rawFloat64(t, tensor.Shape{3}, []float64{1, -2, 0.5})

	got := b.MulScalar(a, 3).AsFloat64()
	want := []float64{3, -6, 1.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MulScalar = %v, want %v", got, want)
		}
	}
}

func TestLowerWithBroadcast(t *testing.T) {
	b := New()
	draws := rawFloat64(t, tensor.Shape{2, 2, 1}, []float64{0.1, 0.9, 0.4, 0.6})
	limit := rawFloat64(t, tensor.Shape{1, 2, 1}, []float64{0.5, 0.7})

	got := b.Lower(draws, limit).AsBool()
	want := []bool{true, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lower = %v, want %v", got, want)
		}
	}
}

func TestEqualTreatsNaNAsUnequal(t *testing.T) {
	b := New()
	a := rawFloat64(t, tensor.Shape{3}, []float64{0, 1, math.NaN()})
	zero := rawFloat64(t, tensor.Shape{1}, []float64{0})

	got := b.Equal(a, zero).AsBool()
	want := []bool{true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Equal = %v, want %v", got, want)
		}
	}
}

func TestIsNaN(t *testing.T) {
	b := New()
	a := rawFloat64(t, tensor.Shape{4}, []float64{1, math.NaN(), math.Inf(1), math.NaN()})

	got := b.IsNaN(a).AsBool()
	want := []bool{false, true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IsNaN = %v, want %v", got, want)
		}
	}
}

func TestNot(t *testing.T) {
	b := New()
	a := rawBool(t, tensor.Shape{3}, []bool{true, false, true})

	got := b.Not(a).AsBool()
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Not = %v, want %v", got, want)
		}
	}
}

func TestWhereBroadcastsScalars(t *testing.T) {
	b := New()
	cond := rawBool(t, tensor.Shape{2, 2}, []bool{true, false, false, true})
	x := rawFloat64(t, tensor.Shape{1}, []float64{-1})
	y := rawFloat64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})

	got := b.Where(cond, x, y).AsFloat64()
	want := []float64{-1, 2, 3, -1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Where = %v, want %v", got, want)
		}
	}
}

func TestWhereNaNFill(t *testing.T) {
	b := New()
	cond := rawBool(t, tensor.Shape{2}, []bool{true, false})
	fill := rawFloat64(t, tensor.Shape{1}, []float64{math.NaN()})
	y := rawFloat64(t, tensor.Shape{2}, []float64{1, 2})

	got := b.Where(cond, fill, y).AsFloat64()
	if !math.IsNaN(got[0]) || got[1] != 2 {
		t.Fatalf("Where with NaN fill = %v", got)
	}
}

func TestCast(t *testing.T) {
	b := New()

	f := rawFloat64(t, tensor.Shape{3}, []float64{0, 1.5, -2})
	asBool := b.Cast(f, tensor.Bool).AsBool()
	wantBool := []bool{false, true, true}
	for i := range wantBool {
		if asBool[i] != wantBool[i] {
			t.Fatalf("Cast to bool = %v, want %v", asBool, wantBool)
		}
	}

	mask := rawBool(t, tensor.Shape{2}, []bool{true, false})
	asFloat := b.Cast(mask, tensor.Float64).AsFloat64()
	if asFloat[0] != 1 || asFloat[1] != 0 {
		t.Fatalf("Cast bool to float = %v", asFloat)
	}

	// Same-dtype cast still returns an independent copy.
	same := b.Cast(f, tensor.Float64)
	same.AsFloat64()[0] = 99
	if f.AsFloat64()[0] != 0 {
		t.Error("same-dtype Cast aliases its input")
	}
}

func TestDTypeMismatchPanics(t *testing.T) {
	b := New()
	f32 := tensor.MustNewRaw(tensor.Shape{2}, tensor.Float32)
	f64 := tensor.MustNewRaw(tensor.Shape{2}, tensor.Float64)

	defer func() {
		if recover() == nil {
			t.Fatal("Mul across dtypes did not panic")
		}
	}()
	b.Mul(f32, f64)
}

func TestParallelMatchesSequential(t *testing.T) {
	// Large enough to cross the parallel chunk threshold.
	n := 50000
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i%97) / 97
	}
	a := rawFloat64(t, tensor.Shape{n}, data)

	par := New().MulScalar(a, 3).AsFloat64()
	seq := NewSequential().MulScalar(a, 3).AsFloat64()
	for i := range par {
		if par[i] != seq[i] {
			t.Fatalf("parallel and sequential results differ at %d", i)
		}
	}
}
