// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid, the parsed form of a schematic, and the
// coordinate types used to address it.
package schematic

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Blank is the filler rune. It is neither a digit nor a symbol.
	Blank = '.'
	// GearRune marks a potential gear.
	GearRune = '*'
)

// Coord addresses a single cell. Both components are 0-indexed.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	Top, Left, Bottom, Right int
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= b.Top && c.Row <= b.Bottom && c.Col >= b.Left && c.Col <= b.Right
}

// Grid is an immutable rectangular schematic.
type Grid struct {
	cells [][]rune
	cols  int
}

// Parse converts raw text into a Grid. Rows are separated by '\n'; a final
// newline does not produce an extra row and a trailing '\r' on each row is
// dropped. Empty input, rows of unequal length and digit runs that overflow
// an int are rejected with a *ParseError.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &ParseError{Kind: ErrEmptySchematic}
	}

	g := &Grid{cells: make([][]rune, 0, len(lines))}
	for i, line := range lines {
		row := []rune(strings.TrimSuffix(line, "\r"))
		if i == 0 {
			if len(row) == 0 {
				return nil, &ParseError{Kind: ErrEmptySchematic, Line: 1, Msg: "first row has no columns"}
			}
			g.cols = len(row)
		} else if len(row) != g.cols {
			return nil, &ParseError{
				Kind: ErrRaggedRows,
				Line: i + 1,
				Msg:  fmt.Sprintf("got %d columns, want %d", len(row), g.cols),
			}
		}
		if err := checkRuns(row); err != nil {
			return nil, &ParseError{Kind: ErrNumberOverflow, Line: i + 1, Msg: err.Error()}
		}
		g.cells = append(g.cells, row)
	}
	return g, nil
}

// checkRuns makes sure every digit run of the row fits into an int, so the
// extractor can accumulate values without checking.
func checkRuns(row []rune) error {
	start := -1
	for col := 0; col <= len(row); col++ {
		if col < len(row) && IsDigit(row[col]) {
			if start < 0 {
				start = col
			}
			continue
		}
		if start >= 0 {
			if _, err := strconv.Atoi(string(row[start:col])); err != nil {
				return fmt.Errorf("column %d: %w", start+1, err)
			}
			start = -1
		}
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the rune at c. c must be inside the grid.
func (g *Grid) At(c Coord) rune { return g.cells[c.Row][c.Col] }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < g.cols
}

// Row returns row i as a string.
func (g *Grid) Row(i int) string { return string(g.cells[i]) }

// Neighbourhood returns the 3x3 block centred on c, clamped to the grid.
func (g *Grid) Neighbourhood(c Coord) Bounds {
	return Bounds{
		Top:    max(c.Row-1, 0),
		Left:   max(c.Col-1, 0),
		Bottom: min(c.Row+1, len(g.cells)-1),
		Right:  min(c.Col+1, g.cols-1),
	}
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsSymbol reports whether r is neither a digit nor Blank.
func IsSymbol(r rune) bool { return r != Blank && !IsDigit(r) }

// IsGear reports whether r marks a potential gear.
func IsGear(r rune) bool { return r == GearRune }
