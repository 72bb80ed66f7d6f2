package equilibrium

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for solving.
var (
	// ErrModelNil is returned if a nil model pointer is passed.
	ErrModelNil = errors.New("equilibrium: model is nil")

	// ErrIllConditioned is returned when the assembled system is singular or
	// numerically too close to singular for the solution to be trusted.
	ErrIllConditioned = errors.New("equilibrium: system is ill-conditioned")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("equilibrium: invalid option supplied")
)

// Kind tags the entity a solved unknown belongs to.
type Kind int

const (
	// KindSupport marks a reaction component owned by a support.
	KindSupport Kind = iota

	// KindBeam marks the axial force owned by a beam.
	KindBeam
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindBeam {
		return "beam"
	}

	return "support"
}

// Unknown is one column of the equilibrium system: a reaction component or
// a beam axial force. It is a transient value type created by the solver —
// never one of the model's own entities.
//
// NodeID is set for reaction components only; a beam unknown acts at both
// endpoints with node-relative angles, so it carries none here.
type Unknown struct {
	ID       string
	Kind     Kind
	OwnerID  string
	NodeID   string
	AngleDeg float64
}

// ForceType classifies a solved strength.
type ForceType int

const (
	// Compressive marks a negative solved strength.
	Compressive ForceType = iota

	// Zero marks a strength that rounds to zero.
	Zero

	// Tensile marks a positive solved strength.
	Tensile
)

// String implements fmt.Stringer.
func (t ForceType) String() string {
	switch t {
	case Compressive:
		return "compressive"
	case Tensile:
		return "tensile"
	default:
		return "zero"
	}
}

// Result pairs an Unknown with its solved strength. Value is Strength
// rounded to the configured precision; Type classifies Value.
type Result struct {
	Unknown  Unknown
	Strength float64
	Value    float64
	Type     ForceType
}

// Reaction is the resultant reaction force of one support: a roller's
// single axis component as-is, a pin's two components combined into one
// vector. It exists for presentation (the Cremona sequencer draws one
// reaction per support), not for re-solving.
type Reaction struct {
	SupportID string
	NodeID    string
	AngleDeg  float64
	Strength  float64
}

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Tolerance is the largest acceptable condition number of the
	// assembled matrix; anything above it fails with ErrIllConditioned.
	Tolerance float64

	// ZeroPrecision is the number of decimals Strength is rounded to
	// before classification into Compressive/Zero/Tensile.
	ZeroPrecision int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns solver defaults: condition-number tolerance 1e12
// and classification at 2 decimals.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e12,
		ZeroPrecision: 2,
	}
}

// WithTolerance sets the condition-number bound above which a solve is
// rejected as numerically degenerate. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithZeroPrecision sets the number of decimals used when rounding solved
// strengths for classification. Must not be negative.
func WithZeroPrecision(decimals int) Option {
	return func(o *Options) {
		if decimals < 0 {
			o.err = fmt.Errorf("%w: ZeroPrecision cannot be negative (%d)", ErrOptionViolation, decimals)
			return
		}
		o.ZeroPrecision = decimals
	}
}
