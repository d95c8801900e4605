// Copyright 2026 Grind ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mnar corrupts complete or partially-complete time-series arrays
// with missing-not-at-random patterns, producing training inputs and ground
// truth for imputation models.
//
// Temporal implements the MNAR-t case: missingness tied to temporal
// dynamics through the intensity function
//
//	f(t) = exp(3 * sin(cycle*t + pos))
//
// with t spaced linearly over [0, 1] along the timestep axis. An entry
// survives when an independent uniform draw scaled by the scale parameter
// falls below the intensity at its timestep, so a zero scale removes
// nothing and very large scales remove almost everything.
//
// Inputs are rank-3 arrays of shape (samples, timesteps, channels); missing
// values are NaN. Three container kinds are accepted: nested [][][]float64
// (normalized to *ndarray.Dense), *ndarray.Dense, and CPU float tensors.
// Results carry the input's container kind, never alias its memory, and
// leave the input unmodified.
//
// By default a call returns X_intact, the corrupted X and both masks, with
// missing entries filled by the WithFill value:
//
//	res, err := mnar.Temporal(x, mnar.WithRand(rng))
//	intact := res.Intact.Unwrap().(*ndarray.Dense)
//
// With WithoutMasks only the corrupted array is returned, and missing
// entries stay NaN instead of being filled. The asymmetry is part of the
// contract: lean output is for direct inspection, mask-mode output feeds
// models that expect finite values plus masks.
//
// Randomness is explicit. Every call either uses the generator injected
// with WithRand or constructs a fresh one, so concurrent calls are safe as
// long as they do not share one injected generator.
package mnar
