// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mnar

import (
	"math/rand/v2"

	"github.com/grind-ml/grind/internal/mnar"
)

// Field is the backend-agnostic array surface corruption operates on. Use
// Unwrap to recover the concrete *ndarray.Dense or *tensor.Tensor.
type Field = mnar.Field

// Result holds the outputs of a corruption call. In mask mode all four
// fields are set; in lean mode only Data is set.
type Result = mnar.Result

// Option configures a corruption call.
type Option = mnar.Option

// Sentinel errors returned by corruption calls.
var (
	ErrUnsupportedType = mnar.ErrUnsupportedType
	ErrBadRank         = mnar.ErrBadRank
)

// Temporal corrupts a rank-3 array with a missing-not-at-random pattern
// tied to temporal dynamics. See the package documentation for the accepted
// container kinds and the lean/mask output contract.
func Temporal(x any, opts ...Option) (*Result, error) {
	return mnar.Temporal(x, opts...)
}

// MissingRate returns the fraction of missing (NaN) entries in a rank-3
// array of any supported kind.
func MissingRate(x any) (float64, error) {
	return mnar.MissingRate(x)
}

// WithCycle sets the cycle of the intensity function (default 20).
func WithCycle(cycle float64) Option { return mnar.WithCycle(cycle) }

// WithPos sets the displacement of the intensity function (default 10).
func WithPos(pos float64) Option { return mnar.WithPos(pos) }

// WithScale sets the scale controlling the missing rate (default 3).
// Larger scales remove more values; a zero scale removes none.
func WithScale(scale float64) Option { return mnar.WithScale(scale) }

// WithFill sets the value written over missing entries in mask mode
// (default 0). Lean-mode output always uses NaN instead.
func WithFill(fill float64) Option { return mnar.WithFill(fill) }

// WithoutMasks switches to lean mode: only the corrupted array is returned
// and missing entries stay NaN.
func WithoutMasks() Option { return mnar.WithoutMasks() }

// WithRand supplies the random generator for the synthetic-removal draws.
// Seed it for reproducible corruption; do not share one generator across
// concurrent calls.
func WithRand(rng *rand.Rand) Option { return mnar.WithRand(rng) }
