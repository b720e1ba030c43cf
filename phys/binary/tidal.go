package binary

import (
	"fmt"
	"log"
	"math"
)

// LambdaTilde is the leading tidal parameter of the binary phase,
// Lambda~(eta, Lambda1, Lambda2).
func LambdaTilde(eta, lam1, lam2 float64) float64 {
	a, b := tildeCoefs(eta)
	return a*(lam1+lam2) + b*(lam1-lam2)
}

// DeltaLambdaTilde is the next-to-leading tidal parameter dLambda~ with
// the factor sqrt(1-4 eta) pulled out of the antisymmetric part (Wade et
// al. 2014).
func DeltaLambdaTilde(eta, lam1, lam2 float64) float64 {
	c, d := deltaCoefs(eta)
	return c*(lam1+lam2) + d*(lam1-lam2)
}

func tildeCoefs(eta float64) (a, b float64) {
	a = (8.0 / 13.0) * (1 + 7*eta - 31*eta*eta)
	b = (8.0 / 13.0) * math.Sqrt(1-4*eta) * (1 + 9*eta - 11*eta*eta)
	return a, b
}

func deltaCoefs(eta float64) (c, d float64) {
	c = 0.5 * math.Sqrt(1-4*eta) * (1 - 13272*eta/1319 + 8944*eta*eta/1319)
	d = 0.5 * (1 - 15910*eta/1319 + 32850*eta*eta/1319 + 3380*eta*eta*eta/1319)
	return c, d
}

type lambdasConfig struct {
	logger *log.Logger
}

// Option configures [Lambdas].
type Option func(*lambdasConfig)

// WithLogger sets the logger that receives the clamping warning. The
// default is [log.Default].
func WithLogger(l *log.Logger) Option {
	return func(c *lambdasConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Lambdas inverts [LambdaTilde] and [DeltaLambdaTilde] for the individual
// polarizabilities.
//
// A negative Lambda1 is unphysical; it is set to zero and Lambda2 is
// recomputed so that Lambda~ is unchanged. A warning is logged when that
// happens.
func Lambdas(eta, lamt, dlamt float64, opts ...Option) (lam1, lam2 float64, err error) {
	if !(eta > 0) || eta > 0.25 {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidRatio, eta)
	}
	cfg := lambdasConfig{logger: log.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	a, b := tildeCoefs(eta)
	c, d := deltaCoefs(eta)
	den := (a+b)*(c-d) - (a-b)*(c+d)
	lam1 = ((c-d)*lamt - (a-b)*dlamt) / den
	lam2 = (-(c+d)*lamt + (a+b)*dlamt) / den

	if lam1 < 0 {
		cfg.logger.Printf("binary: Lambda1 = %g < 0 for eta=%g, clamping to 0", lam1, eta)
		lam1 = 0
		lam2 = lamt / (a - b)
	}
	return lam1, lam2, nil
}

// yagi13 holds the coefficients of ln(barlambda_l) as a polynomial in
// ln(barlambda_2), Yagi, Phys. Rev. D 89, 043011 (2014), Tab. I.
var yagi13 = map[int][5]float64{
	3: {-1.15, 1.18, 2.51e-2, -1.31e-3, 2.52e-5},
	4: {-2.45, 1.43, 3.95e-2, -1.81e-3, 2.8e-5},
}

// Yagi13BarLambda returns the multipolar tidal parameter barlambda_l
// predicted by the quasi-universal fit from barlambda_2. Only l = 3 and
// l = 4 are fitted.
func Yagi13BarLambda(barlam2 float64, ell int) (float64, error) {
	c, ok := yagi13[ell]
	if !ok {
		return 0, fmt.Errorf("%w: l=%d", ErrUnsupportedFit, ell)
	}
	x := math.Log(barlam2)
	var y float64
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return math.Exp(y), nil
}

// KappaFromBarLambda returns the tidal coupling constants kappa^A_l and
// kappa^B_l of a binary with q = M_A/M_B >= 1.
func KappaFromBarLambda(q, barlamA, barlamB float64, ell int) (kappaA, kappaB float64, err error) {
	if ell < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidMultipole, ell)
	}
	xa := q / (1 + q)
	xb := 1 - xa
	f := doubleFactorial(2*ell - 1)
	p := float64(2*ell + 1)
	kappaA = f * barlamA * math.Pow(xa, p) / q
	kappaB = f * barlamB * math.Pow(xb, p) * q
	return kappaA, kappaB, nil
}

// BarLambdaFromLove returns barlambda_l = 2 k_l / ((2l-1)!! C^(2l+1)) for
// compactness c and Love number kell.
func BarLambdaFromLove(c, kell float64, ell int) (float64, error) {
	if ell < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMultipole, ell)
	}
	return 2 * kell / (doubleFactorial(2*ell-1) * math.Pow(c, float64(2*ell+1))), nil
}

func doubleFactorial(n int) float64 {
	r := 1.0
	for ; n > 1; n -= 2 {
		r *= float64(n)
	}
	return r
}
