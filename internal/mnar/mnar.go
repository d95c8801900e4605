package mnar

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/grind-ml/grind/internal/backend/cpu"
	"github.com/grind-ml/grind/internal/tensor"
	"github.com/grind-ml/grind/ndarray"
)

var (
	// ErrUnsupportedType reports an input that is none of the supported
	// array kinds.
	ErrUnsupportedType = errors.New("mnar: unsupported input type")

	// ErrBadRank reports an input array that is not rank 3.
	ErrBadRank = errors.New("mnar: input must be rank 3 (samples, timesteps, channels)")
)

// Result holds the outputs of a corruption call. In mask mode all four
// fields are set; in lean mode only Data is set.
type Result struct {
	// Intact is the input with originally-missing entries replaced by the
	// fill value and every observed value preserved.
	Intact Field

	// Data is the corrupted array. In mask mode both originally-missing
	// and synthetically-removed entries hold the fill value; in lean mode
	// they are NaN.
	Data Field

	// MissingMask is 1 where Data holds an observed value, 0 where it is
	// missing for any reason.
	MissingMask Field

	// IndicatingMask is 1 exactly where a value was observed in the input
	// but removed by this call: the ground truth for scoring imputation.
	IndicatingMask Field
}

type config struct {
	cycle       float64
	pos         float64
	scale       float64
	fill        float64
	returnMasks bool
	rng         *rand.Rand
}

// Option configures a corruption call.
type Option func(*config)

// WithCycle sets the cycle of the intensity function (default 20).
func WithCycle(cycle float64) Option {
	return func(c *config) { c.cycle = cycle }
}

// WithPos sets the displacement of the intensity function (default 10).
func WithPos(pos float64) Option {
	return func(c *config) { c.pos = pos }
}

// WithScale sets the scale controlling the missing rate (default 3).
// Larger scales remove more values; a zero scale removes none.
func WithScale(scale float64) Option {
	return func(c *config) { c.scale = scale }
}

// WithFill sets the value written over missing entries in mask mode
// (default 0). Lean-mode output always uses NaN instead.
func WithFill(fill float64) Option {
	return func(c *config) { c.fill = fill }
}

// WithoutMasks switches to lean mode: the call returns only the corrupted
// array, with every missing entry left as NaN rather than filled.
func WithoutMasks() Option {
	return func(c *config) { c.returnMasks = false }
}

// WithRand supplies the random generator for the synthetic-removal draws.
// Seed it for reproducible corruption. A generator must not be shared by
// concurrent calls; without this option each call constructs its own.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// Temporal corrupts a rank-3 array (samples × timesteps × channels) with a
// missing-not-at-random pattern tied to temporal dynamics: entry (s, t, c)
// is removed when an independent uniform draw scaled by scale falls below
// the intensity exp(3*sin(cycle*time(t) + pos)), with time(t) spaced
// linearly over [0, 1]. Entries already NaN in the input count as missing
// throughout.
//
// x may be a nested [][][]float64 (normalized to *ndarray.Dense), a
// *ndarray.Dense, or a CPU *tensor.Tensor with float32 or float64 elements.
// Outputs carry the input's container kind and never alias its memory.
func Temporal(x any, opts ...Option) (*Result, error) {
	cfg := config{cycle: 20, pos: 10, scale: 3, fill: 0, returnMasks: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f, err := coerce(x)
	if err != nil {
		return nil, err
	}
	return corrupt(f, cfg), nil
}

// MissingRate returns the fraction of missing (NaN) entries in a rank-3
// array of any supported kind.
func MissingRate(x any) (float64, error) {
	f, err := coerce(x)
	if err != nil {
		return 0, err
	}
	return 1 - f.ObservedMask().Mean(), nil
}

// corrupt is the shared algorithm; every container-specific detail lives
// behind the Field surface.
func corrupt(x Field, cfg config) *Result {
	_, nl, _ := x.Dims()

	observed := x.ObservedMask()
	intensity := x.Timeline(intensityCurve(nl, cfg.cycle, cfg.pos))
	draws := x.Uniform(cfg.rng)

	// An entry survives its draw when draw*scale < intensity. The missing
	// mask marks entries that were observed and survived; everything else
	// is missing in the output.
	kept := draws.LessScaled(cfg.scale, intensity)
	missing := observed.MulElem(kept)

	if !cfg.returnMasks {
		return &Result{Data: x.NaNToNum(cfg.fill).MaskedFill(missing, math.NaN())}
	}

	intact := x.NaNToNum(cfg.fill)
	return &Result{
		Intact:         intact,
		Data:           intact.MaskedFill(missing, cfg.fill),
		MissingMask:    missing,
		IndicatingMask: observed.Sub(missing),
	}
}

// intensityCurve evaluates exp(3*sin(cycle*t + pos)) at nl time points
// spaced linearly over [0, 1]. A single timestep sits at t = 0.
func intensityCurve(nl int, cycle, pos float64) []float64 {
	curve := make([]float64, nl)
	for i := range curve {
		t := 0.0
		if nl > 1 {
			t = float64(i) / float64(nl-1)
		}
		curve[i] = math.Exp(3 * math.Sin(cycle*t+pos))
	}
	return curve
}

// coerce normalizes a supported input into its Field adapter.
func coerce(x any) (Field, error) {
	switch v := x.(type) {
	case [][][]float64:
		d, err := ndarray.FromNested(v)
		if err != nil {
			return nil, err
		}
		return denseField{d}, nil
	case *ndarray.Dense:
		if v.Rank() != 3 {
			return nil, fmt.Errorf("%w, got shape %v", ErrBadRank, v.Shape())
		}
		return denseField{v}, nil
	case *tensor.Tensor[float32, *cpu.Backend]:
		if v.Shape().Rank() != 3 {
			return nil, fmt.Errorf("%w, got shape %v", ErrBadRank, v.Shape())
		}
		return tensorField[float32, *cpu.Backend]{v}, nil
	case *tensor.Tensor[float64, *cpu.Backend]:
		if v.Shape().Rank() != 3 {
			return nil, fmt.Errorf("%w, got shape %v", ErrBadRank, v.Shape())
		}
		return tensorField[float64, *cpu.Backend]{v}, nil
	default:
		return nil, fmt.Errorf("%w: got %T, want [][][]float64, *ndarray.Dense or a CPU float tensor", ErrUnsupportedType, x)
	}
}
