package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parse failures wrap one of these sentinels together with the section that
// was being read; callers test with errors.Is.
var (
	ErrMalformedSection = errors.New("malformed section")
	ErrTruncatedInput   = errors.New("unexpected end of input")
)

// MshFile holds the arrays extracted from one Gmsh-style results file.
// Nodes and Elements describe the unit cell mesh, Densities carries one
// scalar per element and Displacements one 2D vector per node. A nil
// Displacements means the file had no $NodeData section, which also
// disables deformation and lattice jump correction downstream - it is not
// the same as a zero field.
type MshFile struct {
	Nodes         []r2.Vec
	Elements      [][]int
	Densities     []float64
	Displacements []r2.Vec
}

// LineScanner is a pull-based line cursor over a mesh file. The top-level
// dispatcher steps marker to marker with Scan/Text; section readers pull
// the exact number of lines their section declares with Next/Skip, which
// fail with ErrTruncatedInput when the input runs out mid-section.
type LineScanner struct {
	scanner *bufio.Scanner
}

func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{scanner: bufio.NewScanner(r)}
}

// Scan advances one line at the top level; false means end of input.
func (ls *LineScanner) Scan() bool {
	return ls.scanner.Scan()
}

// Text returns the current line with surrounding whitespace removed.
func (ls *LineScanner) Text() string {
	return strings.TrimSpace(ls.scanner.Text())
}

func (ls *LineScanner) Err() error {
	return ls.scanner.Err()
}

// Next pulls the next line inside a section.
func (ls *LineScanner) Next() (string, error) {
	if !ls.scanner.Scan() {
		if err := ls.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncatedInput
	}
	return strings.TrimSpace(ls.scanner.Text()), nil
}

// Skip discards n lines inside a section.
func (ls *LineScanner) Skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := ls.Next(); err != nil {
			return err
		}
	}
	return nil
}

// ReadMsh reads a Gmsh-style results file and extracts the node, element,
// density and displacement arrays.
func ReadMsh(filename string) (*MshFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadMshFrom(file)
}

// ReadMshFrom extracts the mesh arrays from file content in a single
// forward pass, dispatching on the four section markers and ignoring
// everything else. If a marker repeats, the last occurrence wins.
func ReadMshFrom(r io.Reader) (*MshFile, error) {
	var (
		ls  = NewLineScanner(r)
		msh = &MshFile{}
		err error
	)
	for ls.Scan() {
		switch ls.Text() {
		case "$Nodes":
			if msh.Nodes, err = readNodes(ls); err != nil {
				return nil, fmt.Errorf("$Nodes: %w", err)
			}

		case "$Elements":
			if msh.Elements, err = readElements(ls); err != nil {
				return nil, fmt.Errorf("$Elements: %w", err)
			}

		case "$ElementData":
			if msh.Densities, err = readElementScalars(ls); err != nil {
				return nil, fmt.Errorf("$ElementData: %w", err)
			}

		case "$NodeData":
			if msh.Displacements, err = readNodeVectors(ls); err != nil {
				return nil, fmt.Errorf("$NodeData: %w", err)
			}
		}
	}
	if err = ls.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	return msh, nil
}

// readNodes reads the $Nodes section: a 4-integer header whose second
// field is the node count n, then one entity block line and n node tag
// lines to discard, then n coordinate lines of which the first two fields
// are kept as (x, y).
func readNodes(ls *LineScanner) ([]r2.Vec, error) {
	n, err := readCountHeader(ls, 4, 1)
	if err != nil {
		return nil, err
	}
	if err = ls.Skip(n + 1); err != nil {
		return nil, err
	}

	nodes := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		line, err := ls.Next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("node %d: coordinate line %q should have 3 fields: %w",
				i, line, ErrMalformedSection)
		}
		if nodes[i].X, err = parseFloat(fields[0]); err != nil {
			return nil, err
		}
		if nodes[i].Y, err = parseFloat(fields[1]); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// readElements reads the $Elements section: a 4-integer header whose
// second field is the element count, one entity block line to discard,
// then one line of whitespace-separated integers per element. The first
// integer of each line is the element tag and is dropped; the rest are
// 1-based node indices converted to 0-based connectivity.
//
// Known limitation: rows are kept as parsed, so a file with mixed element
// shapes produces ragged connectivity. Nothing pads or rejects it here.
func readElements(ls *LineScanner) ([][]int, error) {
	n, err := readCountHeader(ls, 4, 1)
	if err != nil {
		return nil, err
	}
	if err = ls.Skip(1); err != nil {
		return nil, err
	}

	elements := make([][]int, n)
	for i := 0; i < n; i++ {
		line, err := ls.Next()
		if err != nil {
			return nil, err
		}
		row, err := parseInts(line)
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("element %d: connectivity line %q has no node indices: %w",
				i, line, ErrMalformedSection)
		}
		conn := make([]int, len(row)-1)
		for j, v := range row[1:] {
			conn[j] = v - 1
		}
		elements[i] = conn
	}
	return elements, nil
}

// readElementScalars reads the $ElementData section: 6 metadata lines to
// discard, a count line, then count lines of "tag value" pairs of which
// the value is kept.
func readElementScalars(ls *LineScanner) ([]float64, error) {
	n, err := readDataHeader(ls)
	if err != nil {
		return nil, err
	}

	field := make([]float64, n)
	for i := 0; i < n; i++ {
		line, err := ls.Next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("record %d: data line %q should have 2 fields: %w",
				i, line, ErrMalformedSection)
		}
		if field[i], err = parseFloat(fields[1]); err != nil {
			return nil, err
		}
	}
	return field, nil
}

// readNodeVectors reads the $NodeData section: 6 metadata lines to
// discard, a count line, then count lines of "tag ux uy uz" records of
// which (ux, uy) is kept.
func readNodeVectors(ls *LineScanner) ([]r2.Vec, error) {
	n, err := readDataHeader(ls)
	if err != nil {
		return nil, err
	}

	field := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		line, err := ls.Next()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("record %d: data line %q should have 4 fields: %w",
				i, line, ErrMalformedSection)
		}
		if field[i].X, err = parseFloat(fields[1]); err != nil {
			return nil, err
		}
		if field[i].Y, err = parseFloat(fields[2]); err != nil {
			return nil, err
		}
	}
	return field, nil
}

// readCountHeader parses a header line of exactly want integers and
// returns the count at position countAt.
func readCountHeader(ls *LineScanner, want, countAt int) (int, error) {
	line, err := ls.Next()
	if err != nil {
		return 0, err
	}
	hdr, err := parseInts(line)
	if err != nil {
		return 0, err
	}
	if len(hdr) != want {
		return 0, fmt.Errorf("header %q should have %d fields: %w", line, want, ErrMalformedSection)
	}
	n := hdr[countAt]
	if n < 0 {
		return 0, fmt.Errorf("header %q declares negative count: %w", line, ErrMalformedSection)
	}
	return n, nil
}

// readDataHeader discards the 6 metadata lines of a $ElementData or
// $NodeData section (string tags, real tags, integer tags) and returns
// the record count that follows them.
func readDataHeader(ls *LineScanner) (int, error) {
	if err := ls.Skip(6); err != nil {
		return 0, err
	}
	line, err := ls.Next()
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf("count line %q should have 1 field: %w", line, ErrMalformedSection)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("count %q is not an integer: %w", fields[0], ErrMalformedSection)
	}
	if n < 0 {
		return 0, fmt.Errorf("count line %q declares negative count: %w", line, ErrMalformedSection)
	}
	return n, nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %q is not an integer: %w", f, ErrMalformedSection)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not a number: %w", field, ErrMalformedSection)
	}
	return v, nil
}
