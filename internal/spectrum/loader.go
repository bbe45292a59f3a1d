package spectrum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyGrid is returned when an input holds no data rows.
var ErrEmptyGrid = errors.New("no data rows")

// maxLineLength bounds a single matrix row; simulation outputs can carry
// tens of thousands of frequency bins per line.
const maxLineLength = 64 * 1024 * 1024

// ParseError locates a malformed value or row in an input file.
type ParseError struct {
	Path   string
	Line   int
	Column int // 1-based field index, 0 when the whole row is at fault
	Err    error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		loc += fmt.Sprintf(", field %d", e.Column)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Path, loc, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a spectrum grid from an ASCII matrix file.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read parses whitespace-separated floats, one grid row per line. Blank
// lines and anything after a '#' are ignored. Every row must have the same
// number of columns.
func Read(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var data []float64
	rows, cols := 0, -1
	line := 0

	for sc.Scan() {
		line++

		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if cols < 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("row has %d columns, expected %d", len(fields), cols)}
		}

		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: j + 1, Err: err}
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return mat.NewDense(rows, cols, data), nil
}
