package mnar

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/grind-ml/grind/ndarray"
)

// denseField adapts *ndarray.Dense to the Field surface.
type denseField struct {
	d *ndarray.Dense
}

func (f denseField) Dims() (int, int, int) {
	s := f.d.Shape()
	return s[0], s[1], s[2]
}

func (f denseField) ObservedMask() Field {
	return denseField{f.d.FiniteMask()}
}

func (f denseField) NaNToNum(fill float64) Field {
	return denseField{f.d.NaNToNum(fill)}
}

func (f denseField) Uniform(rng *rand.Rand) Field {
	return denseField{ndarray.Uniform(rng, f.d.Shape()...)}
}

func (f denseField) Timeline(curve []float64) Field {
	ns, nl, nc := f.Dims()
	out := ndarray.Zeros(ns, nl, nc)
	data := out.Data()
	for s := 0; s < ns; s++ {
		for t := 0; t < nl; t++ {
			base := (s*nl + t) * nc
			for c := 0; c < nc; c++ {
				data[base+c] = curve[t]
			}
		}
	}
	return denseField{out}
}

func (f denseField) MulElem(o Field) Field {
	return denseField{f.d.MulElem(f.peer(o))}
}

func (f denseField) Sub(o Field) Field {
	return denseField{f.d.Sub(f.peer(o))}
}

func (f denseField) LessScaled(scale float64, threshold Field) Field {
	scaled := f.d.Scale(scale).Data()
	limit := f.peer(threshold).Data()
	out := ndarray.Zeros(f.d.Shape()...)
	mask := out.Data()
	for i := range mask {
		if scaled[i] < limit[i] {
			mask[i] = 1
		}
	}
	return denseField{out}
}

func (f denseField) MaskedFill(mask Field, fill float64) Field {
	m := f.peer(mask).Data()
	out := f.d.Clone()
	data := out.Data()
	for i := range data {
		if m[i] == 0 {
			data[i] = fill
		}
	}
	return denseField{out}
}

func (f denseField) Mean() float64 {
	return stat.Mean(f.d.Data(), nil)
}

func (f denseField) Unwrap() any {
	return f.d
}

func (f denseField) peer(o Field) *ndarray.Dense {
	p, ok := o.(denseField)
	if !ok {
		panic(fmt.Sprintf("mnar: mixed array kinds: *ndarray.Dense vs %T", o.Unwrap()))
	}
	return p.d
}
