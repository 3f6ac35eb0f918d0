package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vacuum/gridgraph"
)

// Load validates path and parses the world file it names.
//
// Validation order:
//  1. path must end in ".txt" (ErrBadExtension), no file access yet.
//  2. the file must exist (ErrNotFound).
//  3. the file must be readable (ErrUnreadable).
//  4. the content must parse (see Parse).
func Load(path string) (*World, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, ErrBadExtension
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}

// Parse reads a world in the column/row header format from r.
// Read failures are reported as ErrUnreadable; content violations
// as the matching sentinel wrapped with the offending line.
func Parse(r io.Reader) (*World, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected column and row counts on lines 1 and 2", ErrBadDimensions)
	}
	cols, err := parseDimension(lines[0], "column")
	if err != nil {
		return nil, err
	}
	rows, err := parseDimension(lines[1], "row")
	if err != nil {
		return nil, err
	}

	body := lines[2:]
	if len(body) != rows {
		return nil, fmt.Errorf("%w: header declares %d, found %d", ErrRowCount, rows, len(body))
	}

	cells := make([][]gridgraph.CellKind, rows)
	w := &World{}
	starts := 0
	for r, line := range body {
		row := []rune(line)
		if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, header declares %d", ErrRowWidth, r+3, len(row), cols)
		}
		cells[r] = make([]gridgraph.CellKind, cols)
		for c := 0; c < cols; c++ {
			p := gridgraph.Position{Row: r, Col: c}
			switch row[c] {
			case WallRune:
				cells[r][c] = gridgraph.Wall
			case StartRune:
				starts++
				w.Start = p
			case DirtyRune:
				w.Goals = append(w.Goals, p)
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	w.Grid, err = gridgraph.NewGridGraph(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDimensions, err)
	}

	return w, nil
}

// readLines splits r into lines without terminators, dropping '\r'
// and any trailing blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// parseDimension parses one positive header integer.
func parseDimension(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s count %q is not an integer", ErrBadDimensions, what, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s count must be positive, got %d", ErrBadDimensions, what, n)
	}

	return n, nil
}
