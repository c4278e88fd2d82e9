// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

// Number is a maximal horizontal run of digits.
type Number struct {
	Value  int
	Digits string
	Row    int
	Start  int // first column, inclusive
	End    int // last column, inclusive
}

// Len returns the number of digits in the run.
func (n Number) Len() int { return n.End - n.Start + 1 }

// Overlaps reports whether any cell of n lies inside b.
func (n Number) Overlaps(b Bounds) bool {
	return n.Row >= b.Top && n.Row <= b.Bottom && n.Start <= b.Right && n.End >= b.Left
}

// ExtractNumbers scans the whole grid top to bottom, left to right.
func ExtractNumbers(g *Grid) []Number {
	return ExtractRows(g, 0, g.Rows()-1)
}

// ExtractRows scans rows from..to inclusive. The range is clamped to the grid.
func ExtractRows(g *Grid, from, to int) []Number {
	from, to = max(from, 0), min(to, g.Rows()-1)
	var numbers []Number
	for row := from; row <= to; row++ {
		numbers = appendRow(numbers, g, row)
	}
	return numbers
}

func appendRow(numbers []Number, g *Grid, row int) []Number {
	cells := g.cells[row]
	start, value := -1, 0
	closeRun := func(end int) {
		if start < 0 {
			return
		}
		numbers = append(numbers, Number{
			Value:  value,
			Digits: string(cells[start : end+1]),
			Row:    row,
			Start:  start,
			End:    end,
		})
		start, value = -1, 0
	}

	for col, r := range cells {
		if !IsDigit(r) {
			closeRun(col - 1)
			continue
		}
		if start < 0 {
			start = col
		}
		value = value*10 + int(r-'0')
	}
	// A run touching the right edge has no terminating rune.
	closeRun(len(cells) - 1)
	return numbers
}

// rowIndex groups numbers by row so gear lookups only visit nearby rows.
type rowIndex map[int][]Number

func indexByRow(numbers []Number) rowIndex {
	idx := make(rowIndex)
	for _, n := range numbers {
		idx[n.Row] = append(idx[n.Row], n)
	}
	return idx
}

// within returns the numbers overlapping b, in scan order.
func (idx rowIndex) within(b Bounds) []Number {
	var found []Number
	for row := b.Top; row <= b.Bottom; row++ {
		for _, n := range idx[row] {
			if n.Overlaps(b) {
				found = append(found, n)
			}
		}
	}
	return found
}
