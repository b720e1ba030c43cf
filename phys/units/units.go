package units

import "math"

// Physical constants in SI units.
const (
	SpeedOfLight  = 299792458.0
	Gravitational = 6.673e-11
	SolarMass     = 1.98892e30
	ElectronVolt  = 1.602176565e-19
	MeV           = 1e6 * ElectronVolt
	Boltzmann     = 1.3806488e-23
	Lightyear     = 9460730472580800.0
	Parsec        = 3.085677581491367e16
	Megaparsec    = 1e6 * Parsec
	Planck        = 6.62606957e-34
	HBar          = 1.054571726e-34
)

// Solar mass in geometric length and time units, as used to rescale
// waveforms given in units of the total mass.
const (
	MSunMeter  = 1.476625061404649406193430731479084713e3
	MSunSecond = 4.925491025543575903411922162094833998e-6
)

// System is a system of units. Derived units follow from the three base
// units and are computed on access.
type System struct {
	length float64
	time   float64
	mass   float64
}

// New returns the system with the given base units.
func New(length, time, mass float64) System {
	return System{length: length, time: time, mass: mass}
}

func (s System) Length() float64 { return s.length }
func (s System) Time() float64 { return s.time }
func (s System) Mass() float64 { return s.mass }

func (s System) Freq() float64 { return 1 / s.time }
func (s System) Velocity() float64 { return s.length / s.time }
func (s System) Accel() float64 { return s.Velocity() / s.time }
func (s System) Force() float64 { return s.Accel() * s.mass }
func (s System) Area() float64 { return s.length * s.length }
func (s System) Volume() float64 { return s.length * s.length * s.length }
func (s System) Density() float64 { return s.mass / s.Volume() }
func (s System) Pressure() float64 { return s.Force() / s.Area() }
func (s System) Power() float64 { return s.Force() * s.Velocity() }
func (s System) Energy() float64 { return s.Force() * s.length }

// EnergyDensity is energy per volume.
func (s System) EnergyDensity() float64 { return s.Energy() / s.Volume() }

// AngMom is the unit of angular momentum.
func (s System) AngMom() float64 { return s.Energy() * s.time }

// MomentOfInertia is mass times area.
func (s System) MomentOfInertia() float64 { return s.mass * s.Area() }

// Div expresses s in terms of base. Both must be given relative to the same
// reference, normally SI.
func (s System) Div(base System) System {
	return System{
		length: s.length / base.length,
		time:   s.time / base.time,
		mass:   s.mass / base.mass,
	}
}

// GeomLength returns the geometric (c = G = 1) system whose length unit is
// l metres.
func GeomLength(l float64) System {
	return System{length: l, time: l / SpeedOfLight, mass: l * SpeedOfLight * SpeedOfLight / Gravitational}
}

// GeomMass returns the geometric system whose mass unit is m kilograms.
func GeomMass(m float64) System {
	return GeomLength(m * Gravitational / (SpeedOfLight * SpeedOfLight))
}

// GeomDensity returns the geometric system whose density unit is rho in
// kg/m^3.
func GeomDensity(rho float64) System {
	return GeomLength(SpeedOfLight / math.Sqrt(Gravitational*rho))
}

// Predefined systems, expressed in SI.
var (
	SI     = New(1, 1, 1)
	CGS    = New(1e-2, 1, 1e-3)
	Cactus = GeomMass(SolarMass)
)

// Common quantities in Cactus units.
var (
	KmCactus     = 1e3 / Cactus.Length()
	ParsecCactus = Parsec / Cactus.Length()
	MsCactus     = 1e-3 / Cactus.Time()
	HzCactus     = 1 / Cactus.Freq()
	KHzCactus    = 1e3 / Cactus.Freq()
)

// FreqToHz converts the mass-rescaled frequency M*f of a system with total
// mass m (solar masses) to Hz.
func FreqToHz(mf, m float64) float64 {
	return mf / (m * MSunSecond)
}

// FreqToGeom is the inverse of [FreqToHz].
func FreqToGeom(fHz, m float64) float64 {
	return m * fHz * MSunSecond
}
