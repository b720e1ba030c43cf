// Package wavefile reads and writes plain numeric column files: one sample
// per line, whitespace-separated columns, '#' or '"' starting a comment
// line.
package wavefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-gw/wave/series"
)

var (
	ErrRagged     = errors.New("wavefile: rows have different column counts")
	ErrNoData     = errors.New("wavefile: no data rows")
	ErrColumns    = errors.New("wavefile: column index out of range")
	ErrColumnSize = errors.New("wavefile: columns have different lengths")
)

// Read parses r and returns its columns.
func Read(r io.Reader) ([][]float64, error) {
	var cols [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '"' {
			continue
		}

		fields := strings.Fields(text)
		if cols == nil {
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrRagged, line, len(fields), len(cols))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("wavefile: line %d column %d: %w", line, i, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, ErrNoData
	}
	return cols, nil
}

func ReadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cols, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

// Series builds a complex series from the time, real and imaginary columns
// of cols.
func Series(cols [][]float64, t, re, im int) (series.TimeSeries, error) {
	for _, c := range []int{t, re, im} {
		if c < 0 || c >= len(cols) {
			return series.TimeSeries{}, fmt.Errorf("%w: %d of %d", ErrColumns, c, len(cols))
		}
	}
	return series.New(cols[t], cols[re], cols[im])
}

// Write writes header as comment lines followed by the columns, one row
// per sample. Values use the shortest representation that parses back
// exactly.
func Write(w io.Writer, header string, cols ...[]float64) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, h := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", h); err != nil {
				return err
			}
		}
	}

	if len(cols) == 0 {
		return bw.Flush()
	}
	n := len(cols[0])
	for i, c := range cols {
		if len(c) != n {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrColumnSize, i, len(c), n)
		}
	}

	buf := make([]byte, 0, 32*len(cols))
	for row := range n {
		buf = buf[:0]
		for i, c := range cols {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, c[row], 'e', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes to path, or to stdout when path is "-".
func WriteFile(path, header string, cols ...[]float64) error {
	if path == "-" {
		return Write(os.Stdout, header, cols...)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, header, cols...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
