package compose

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-gw/phys/units"
	"github.com/cwbudde/algo-gw/wave/series"
)

// Composition errors.
var (
	ErrNoModes        = errors.New("compose: no modes")
	ErrLengthMismatch = errors.New("compose: mode series lengths differ")
	ErrInvalidMode    = errors.New("compose: invalid (l, m) mode")
	ErrInvalidSource  = errors.New("compose: mass and distance must be positive")
)

// spinWeight of the strain harmonics.
const spinWeight = -2

// ModeAmpPhase is one strain mode as amplitude and phase on a time grid,
// in units of the total mass.
type ModeAmpPhase struct {
	Key       series.ModeKey
	Time      []float64
	Amplitude []float64
	Phase     []float64
}

// Polarizations is the observed strain in SI units.
type Polarizations struct {
	Time  []float64
	Plus  []float64
	Cross []float64
}

type config struct {
	negative     bool
	distanceUnit float64
}

// Option configures [Strain].
type Option func(*config)

// WithNegativeModes adds h_{l,-m} = (-1)^l conj(h_lm) for every given mode.
// Use it when only m > 0 modes are supplied.
func WithNegativeModes() Option {
	return func(c *config) {
		c.negative = true
	}
}

// WithDistanceUnit sets the length, in metres, of one distance unit.
func WithDistanceUnit(metres float64) Option {
	return func(c *config) {
		if metres > 0 {
			c.distanceUnit = metres
		}
	}
}

// Strain composes modes into h_+ and h_x for a source of total mass mTotal
// (solar masses) at distance, seen at inclination and azimuth phi.
//
// All modes must have equal lengths; the time axis is taken from the
// first mode.
func Strain(modes []ModeAmpPhase, mTotal, distance, inclination, phi float64, opts ...Option) (Polarizations, error) {
	if len(modes) == 0 {
		return Polarizations{}, ErrNoModes
	}
	if !(mTotal > 0) || !(distance > 0) {
		return Polarizations{}, fmt.Errorf("%w: M=%g D=%g", ErrInvalidSource, mTotal, distance)
	}

	cfg := config{distanceUnit: units.Megaparsec}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(modes[0].Time)
	for _, md := range modes {
		if !md.Key.Valid() {
			return Polarizations{}, fmt.Errorf("%w: %v", ErrInvalidMode, md.Key)
		}
		if len(md.Time) != n || len(md.Amplitude) != n || len(md.Phase) != n {
			return Polarizations{}, fmt.Errorf("%w: mode %v has %d/%d/%d samples, want %d",
				ErrLengthMismatch, md.Key, len(md.Time), len(md.Amplitude), len(md.Phase), n)
		}
	}

	pref := mTotal * units.MSunMeter / (distance * cfg.distanceUnit)
	h := make([]complex128, n)

	for _, md := range modes {
		l, m := md.Key.L, md.Key.M
		y, err := SpinWeightedYlm(spinWeight, l, m, inclination, phi)
		if err != nil {
			return Polarizations{}, err
		}

		var yNeg complex128
		sign := complex(1, 0)
		if cfg.negative {
			if yNeg, err = SpinWeightedYlm(spinWeight, l, -m, inclination, phi); err != nil {
				return Polarizations{}, err
			}
			if l%2 != 0 {
				sign = -1
			}
		}

		for i := range h {
			hlm := complex(pref*md.Amplitude[i], 0) * cmplx.Exp(complex(0, -md.Phase[i]))
			h[i] += hlm * y
			if cfg.negative {
				h[i] += sign * cmplx.Conj(hlm) * yNeg
			}
		}
	}

	out := Polarizations{
		Time:  make([]float64, n),
		Plus:  make([]float64, n),
		Cross: make([]float64, n),
	}
	tUnit := mTotal * units.MSunSecond
	for i, v := range h {
		out.Time[i] = modes[0].Time[i] * tUnit
		out.Plus[i] = real(v)
		out.Cross[i] = -imag(v)
	}
	return out, nil
}
