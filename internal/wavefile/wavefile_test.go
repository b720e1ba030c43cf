package wavefile

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSkipsComments(t *testing.T) {
	in := `# r=400
" legacy header
0 1.5 -2

1 2.5e-3 4
`
	cols, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(cols) != 3 || len(cols[0]) != 2 {
		t.Fatalf("shape = %d x %d, want 3 x 2", len(cols), len(cols[0]))
	}
	if cols[1][1] != 2.5e-3 || cols[2][0] != -2 {
		t.Fatalf("cols = %v", cols)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "# only a comment\n", ErrNoData},
		{"ragged", "0 1 2\n1 2\n", ErrRagged},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.in)); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if _, err := Read(strings.NewReader("0 x\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	a := []float64{0, 0.1, 1.0 / 3}
	b := []float64{math.Pi, -1e-300, 6.02e23}

	var buf bytes.Buffer
	if err := Write(&buf, "J_orb:0 E_b:1\nsecond", a, b); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# J_orb:0 E_b:1\n# second\n") {
		t.Fatalf("header missing: %q", buf.String())
	}

	cols, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	for i := range a {
		if cols[0][i] != a[i] || cols[1][i] != b[i] {
			t.Fatalf("row %d = (%v, %v), want (%v, %v)", i, cols[0][i], cols[1][i], a[i], b[i])
		}
	}
}

func TestWriteColumnSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "", []float64{1, 2}, []float64{1}); !errors.Is(err, ErrColumnSize) {
		t.Fatalf("err = %v, want ErrColumnSize", err)
	}
}

func TestFileSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psi4_l2_m2.txt")
	if err := WriteFile(path, "", []float64{0, 1, 2}, []float64{1, 0, -1}, []float64{0, 1, 0}); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	cols, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	s, err := Series(cols, 0, 1, 2)
	if err != nil {
		t.Fatalf("Series error: %v", err)
	}
	if s.Len() != 3 || s.Values[1] != complex(0, 1) {
		t.Fatalf("series = %+v", s)
	}
	if _, err := Series(cols, 0, 1, 5); !errors.Is(err, ErrColumns) {
		t.Fatalf("err = %v, want ErrColumns", err)
	}
}
