// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

import (
	"io"
	"strings"
)

// Mask is a boolean overlay with the dimensions of the grid it was built from.
type Mask struct {
	rows, cols int
	cells      []bool
}

func newMask(rows, cols int) *Mask {
	return &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// BuildMask marks the clamped 3x3 neighbourhood of every cell whose rune
// satisfies pred. Marking is a plain OR, so the result does not depend on the
// order in which cells are visited.
func BuildMask(g *Grid, pred func(rune) bool) *Mask {
	m := newMask(g.Rows(), g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := Coord{Row: row, Col: col}
			if pred(g.At(c)) {
				m.mark(g.Neighbourhood(c))
			}
		}
	}
	return m
}

// SymbolMask marks every cell adjacent to a symbol.
func SymbolMask(g *Grid) *Mask { return BuildMask(g, IsSymbol) }

// GearMask marks every cell adjacent to a '*'.
func GearMask(g *Grid) *Mask { return BuildMask(g, IsGear) }

func (m *Mask) mark(b Bounds) {
	for row := b.Top; row <= b.Bottom; row++ {
		for col := b.Left; col <= b.Right; col++ {
			m.cells[row*m.cols+col] = true
		}
	}
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.cols }

// At reports whether c is marked. Cells outside the mask are never marked.
func (m *Mask) At(c Coord) bool {
	if c.Row < 0 || c.Row >= m.rows || c.Col < 0 || c.Col >= m.cols {
		return false
	}
	return m.cells[c.Row*m.cols+c.Col]
}

// Any reports whether any cell of n is marked.
func (m *Mask) Any(n Number) bool {
	for col := n.Start; col <= n.End; col++ {
		if m.At(Coord{Row: n.Row, Col: col}) {
			return true
		}
	}
	return false
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	count := 0
	for _, set := range m.cells {
		if set {
			count++
		}
	}
	return count
}

// String renders the mask as rows of '0' and '1', one row per line, each
// line terminated by a newline.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.cells[row*m.cols+col] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the String form of the mask to w.
func (m *Mask) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
