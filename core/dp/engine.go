package dp

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// Engine adds calibrated statistical noise to numeric values. The privacy
// budget (epsilon, delta) is fixed per instance; construct a new Engine to
// change it. All methods are safe for concurrent use.
type Engine struct {
	epsilon float64
	delta   float64

	// rnd is the injected deterministic source, nil when the process-wide
	// generator is used. The process-wide generator is concurrency-safe on
	// its own; an injected source is serialized with mu.
	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects a deterministic random source, letting tests verify
// noise distributions against fixed seeds. Draws from an injected source are
// serialized internally.
func WithSource(src rand.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rnd = rand.New(src)
		}
	}
}

// NewEngine validates the privacy budget and returns a ready Engine.
// epsilon must be positive (smaller = stronger privacy; +Inf yields zero
// noise) and delta must lie in the open interval (0, 1). Invalid parameters
// return ErrInvalidParameter and are never clamped.
func NewEngine(epsilon, delta float64, opts ...Option) (*Engine, error) {
	if math.IsNaN(epsilon) || epsilon <= 0 {
		return nil, fmt.Errorf("%w: epsilon must be > 0, got %v", ErrInvalidParameter, epsilon)
	}
	if math.IsNaN(delta) || delta <= 0 || delta >= 1 {
		return nil, fmt.Errorf("%w: delta must be in (0, 1), got %v", ErrInvalidParameter, delta)
	}

	e := &Engine{
		epsilon: epsilon,
		delta:   delta,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Epsilon returns the configured privacy budget.
func (e *Engine) Epsilon() float64 {
	return e.epsilon
}

// Delta returns the configured failure probability.
func (e *Engine) Delta() float64 {
	return e.delta
}

// LaplaceNoise returns value plus noise drawn from Laplace(0,
// sensitivity/epsilon), the standard epsilon-differential-privacy mechanism
// for a numeric query of given L1 sensitivity.
func (e *Engine) LaplaceNoise(value, sensitivity float64) float64 {
	scale := sensitivity / e.epsilon
	if scale == 0 {
		return value
	}

	// Inverse-CDF sampling: u uniform in (-0.5, 0.5), noise =
	// -scale * sign(u) * ln(1 - 2|u|). Zero draws are rejected so the
	// log argument stays strictly positive.
	u := e.uniform()
	for u == 0 {
		u = e.uniform()
	}
	u -= 0.5

	return value - scale*math.Copysign(1, u)*math.Log(1-2*math.Abs(u))
}

// GaussianNoise returns value plus noise drawn from Normal(0, sigma) with
// sigma = sensitivity * sqrt(2*ln(1.25/delta)) / epsilon, the standard
// (epsilon, delta)-approximate-differential-privacy mechanism.
func (e *Engine) GaussianNoise(value, sensitivity float64) float64 {
	sigma := sensitivity * math.Sqrt(2*math.Log(1.25/e.delta)) / e.epsilon
	if sigma == 0 {
		return value
	}

	return value + sigma*e.normal()
}

// privatizeOptions holds per-call Privatize settings.
type privatizeOptions struct {
	sensitivity float64
}

// PrivatizeOption configures a single Privatize call.
type PrivatizeOption func(*privatizeOptions)

// WithSensitivity overrides the default L1 sensitivity of 1.0 for one
// Privatize call.
func WithSensitivity(sensitivity float64) PrivatizeOption {
	return func(o *privatizeOptions) {
		o.sensitivity = sensitivity
	}
}

// Privatize applies Laplace noise to every numeric value in statistics and
// returns a new map. Non-numeric values pass through unchanged and every key
// is preserved. Each call draws fresh independent noise; no cumulative budget
// is tracked.
func (e *Engine) Privatize(statistics map[string]any, opts ...PrivatizeOption) map[string]any {
	o := privatizeOptions{sensitivity: 1.0}
	for _, opt := range opts {
		opt(&o)
	}

	noisy := make(map[string]any, len(statistics))
	for key, value := range statistics {
		if f, ok := toFloat64(value); ok {
			noisy[key] = e.LaplaceNoise(f, o.sensitivity)
		} else {
			noisy[key] = value
		}
	}

	return noisy
}

// uniform draws from [0, 1).
func (e *Engine) uniform() float64 {
	if e.rnd == nil {
		return rand.Float64()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Float64()
}

// normal draws from the standard normal distribution.
func (e *Engine) normal() float64 {
	if e.rnd == nil {
		return rand.NormFloat64()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.NormFloat64()
}

// toFloat64 reports whether value is numeric and converts it. Booleans and
// strings are not numeric.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
