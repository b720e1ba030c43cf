package series

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-gw/internal/testutil"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		t       []float64
		re, im  []float64
		wantErr error
	}{
		{"ok", []float64{0, 1, 2}, []float64{1, 2, 3}, []float64{0, 0, 0}, nil},
		{"empty", nil, nil, nil, ErrEmptySeries},
		{"length", []float64{0, 1}, []float64{1}, []float64{0, 0}, ErrLengthMismatch},
		{"duplicate", []float64{0, 1, 1}, []float64{1, 2, 3}, []float64{0, 0, 0}, ErrNonMonotonic},
		{"decreasing", []float64{0, 2, 1}, []float64{1, 2, 3}, []float64{0, 0, 0}, ErrNonMonotonic},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.t, tc.re, tc.im)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUniformStep(t *testing.T) {
	tt := testutil.UniformGrid(0, 0.25, 9)
	dt, err := UniformStep(tt, 1e-9)
	if err != nil {
		t.Fatalf("UniformStep error: %v", err)
	}
	if dt != 0.25 {
		t.Fatalf("dt = %v, want 0.25", dt)
	}

	tt[5] += 0.01
	if _, err := UniformStep(tt, 1e-6); !errors.Is(err, ErrNonUniform) {
		t.Fatalf("err = %v, want ErrNonUniform", err)
	}

	if _, err := UniformStep([]float64{1}, 0); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}

func TestPhaseConvention(t *testing.T) {
	tt := testutil.UniformGrid(0, 0.1, 200)
	phi := testutil.QuadraticPhase(tt, 0, 0.5, 0.2)

	s := TimeSeries{Time: tt, Values: make([]complex128, len(tt))}
	for i, p := range phi {
		s.Values[i] = complex(1.5, 0) * cmplx.Exp(complex(0, -p))
	}

	testutil.RequireSliceNearlyEqual(t, s.Phase(), phi, 1e-10)

	amp := s.Amplitude()
	for i, a := range amp {
		if math.Abs(a-1.5) > 1e-12 {
			t.Fatalf("amp[%d] = %v, want 1.5", i, a)
		}
	}

	f, err := s.Frequency()
	if err != nil {
		t.Fatalf("Frequency error: %v", err)
	}
	want := make([]float64, len(tt))
	for i, x := range tt {
		want[i] = 0.5 + 0.2*x
	}
	testutil.RequireSliceNearlyEqual(t, f, want, 1e-9)
}

func TestDiff1ExactForQuadraticNonUniform(t *testing.T) {
	tt := []float64{0, 0.1, 0.35, 0.5, 0.9, 1.0, 1.6}
	y := make([]float64, len(tt))
	want := make([]float64, len(tt))
	for i, x := range tt {
		y[i] = 3*x*x - 2*x + 1
		want[i] = 6*x - 2
	}

	d, err := Diff1(tt, y)
	if err != nil {
		t.Fatalf("Diff1 error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, d, want, 1e-12)
}

func TestDiff1TwoSamples(t *testing.T) {
	d, err := Diff1([]float64{0, 2}, []float64{1, 5})
	if err != nil {
		t.Fatalf("Diff1 error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, d, []float64{2, 2}, 0)
}

func TestCumTrapz(t *testing.T) {
	tt := []float64{0, 1, 3}
	y := []float64{1, 1, 3}
	got, err := CumTrapz(tt, y)
	if err != nil {
		t.Fatalf("CumTrapz error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 5}, 1e-15)
}

func TestUnwrap(t *testing.T) {
	in := []float64{3, -3, -2.9, 3.1}
	got := Unwrap(in)
	want := []float64{3, -3 + 2*math.Pi, -2.9 + 2*math.Pi, 3.1}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestBundleOrdering(t *testing.T) {
	s := TimeSeries{Time: []float64{0, 1}, Values: []complex128{1, 2}}
	props := Props{Kind: KindStrain, Radius: 100, Mass: 1}

	var b Bundle
	for _, k := range []ModeKey{{3, 2}, {2, 2}, {2, 0}, {4, 4}, {2, 1}} {
		m, err := NewMode(k, props, s)
		if err != nil {
			t.Fatalf("NewMode(%v) error: %v", k, err)
		}
		if err := b.Add(m); err != nil {
			t.Fatalf("Add(%v) error: %v", k, err)
		}
	}

	want := []ModeKey{{2, 0}, {2, 1}, {2, 2}, {3, 2}, {4, 4}}
	got := b.Keys()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	ls := b.LValues()
	if len(ls) != 3 || ls[0] != 2 || ls[1] != 3 || ls[2] != 4 {
		t.Fatalf("LValues = %v", ls)
	}
	ms := b.MValues()
	if len(ms) != 4 || ms[0] != 0 || ms[3] != 4 {
		t.Fatalf("MValues = %v", ms)
	}

	m, _ := NewMode(ModeKey{2, 2}, props, s)
	if err := b.Add(m); !errors.Is(err, ErrDuplicateMode) {
		t.Fatalf("err = %v, want ErrDuplicateMode", err)
	}
	if _, err := b.Lookup(ModeKey{5, 5}); !errors.Is(err, ErrModeNotFound) {
		t.Fatalf("err = %v, want ErrModeNotFound", err)
	}
}

func TestModeKeyValid(t *testing.T) {
	tests := []struct {
		key  ModeKey
		want bool
	}{
		{ModeKey{2, 2}, true},
		{ModeKey{2, -2}, true},
		{ModeKey{2, 3}, false},
		{ModeKey{1, 0}, false},
		{ModeKey{4, -5}, false},
	}
	for _, tc := range tests {
		if got := tc.key.Valid(); got != tc.want {
			t.Errorf("%v.Valid() = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestNewModeRejectsBadProps(t *testing.T) {
	s := TimeSeries{Time: []float64{0, 1}, Values: []complex128{1, 2}}
	if _, err := NewMode(ModeKey{2, 2}, Props{Mass: 0}, s); err == nil {
		t.Fatal("expected error for zero mass")
	}
	if _, err := NewMode(ModeKey{2, 2}, Props{Mass: 1, Radius: -1}, s); err == nil {
		t.Fatal("expected error for negative radius")
	}
}
