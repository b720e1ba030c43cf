package series

import (
	"fmt"
	"math"
)

// ModeKey identifies one spherical-harmonic multipole.
type ModeKey struct {
	L int
	M int
}

// Valid reports whether l >= 2 and |m| <= l.
func (k ModeKey) Valid() bool {
	return k.L >= 2 && k.M >= -k.L && k.M <= k.L
}

// Less orders keys by l, then m.
func (k ModeKey) Less(o ModeKey) bool {
	if k.L != o.L {
		return k.L < o.L
	}
	return k.M < o.M
}

func (k ModeKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.L, k.M)
}

// Kind is the physical variable a mode carries.
type Kind int

const (
	// KindPsi4 is the Weyl curvature scalar, usually stored as r*Psi4.
	KindPsi4 Kind = iota
	// KindStrain is the metric perturbation h, usually stored as r*h.
	KindStrain
)

func (k Kind) String() string {
	switch k {
	case KindPsi4:
		return "Psi4"
	case KindStrain:
		return "h"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Props holds the scalar metadata attached to a mode when it is created.
//
// Props is a plain value; copies never alias.
type Props struct {
	Kind Kind
	// Radius is the extraction radius in geometric units.
	Radius float64
	// Mass is the mass used to rescale time and amplitude (ADM or total).
	Mass float64
	// InitFrequency is the initial GW frequency, the reference for the
	// low-frequency cutoff of fixed-frequency integration.
	InitFrequency float64
}

// Validate checks that the numeric properties are physically usable.
func (p Props) Validate() error {
	if p.Radius < 0 || math.IsNaN(p.Radius) {
		return fmt.Errorf("series: extraction radius must be >= 0: %g", p.Radius)
	}
	if p.Mass <= 0 || math.IsNaN(p.Mass) {
		return fmt.Errorf("series: mass must be > 0: %g", p.Mass)
	}
	if p.InitFrequency < 0 || math.IsNaN(p.InitFrequency) {
		return fmt.Errorf("series: initial frequency must be >= 0: %g", p.InitFrequency)
	}
	return nil
}

// Mode is one multipole of a waveform together with its properties.
type Mode struct {
	Key    ModeKey
	Props  Props
	Series TimeSeries
}

// NewMode validates and returns a Mode.
func NewMode(key ModeKey, props Props, s TimeSeries) (Mode, error) {
	if !key.Valid() {
		return Mode{}, fmt.Errorf("%w: %v", ErrInvalidMode, key)
	}
	if err := props.Validate(); err != nil {
		return Mode{}, err
	}
	if err := s.Validate(); err != nil {
		return Mode{}, fmt.Errorf("mode %v: %w", key, err)
	}
	return Mode{Key: key, Props: props, Series: s}, nil
}

// WithSeries returns a copy of m carrying s and kind in place of the
// original series.
func (m Mode) WithSeries(kind Kind, s TimeSeries) Mode {
	props := m.Props
	props.Kind = kind
	return Mode{Key: m.Key, Props: props, Series: s}
}
