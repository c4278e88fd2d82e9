// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

import "fmt"

// GearNeighbourCount is the number of adjacent numbers that makes a '*' a gear.
const GearNeighbourCount = 2

// Gears returns the coordinates of every '*', in row-major order.
func Gears(g *Grid) []Coord {
	var gears []Coord
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := Coord{Row: row, Col: col}
			if IsGear(g.At(c)) {
				gears = append(gears, c)
			}
		}
	}
	return gears
}

// EvaluateGear returns the gear ratio of the '*' at gear: the product of its
// two adjacent numbers. Only the rows around the gear are scanned. If the
// count of adjacent numbers is not exactly two, the error is an
// *InvalidGearError. A product that does not fit into an int yields an
// *OverflowError.
func EvaluateGear(g *Grid, gear Coord) (int, error) {
	if !g.InBounds(gear) || !IsGear(g.At(gear)) {
		return 0, fmt.Errorf("%w: %s", ErrNotAGear, gear)
	}
	b := g.Neighbourhood(gear)
	return ratio(indexByRow(ExtractRows(g, b.Top, b.Bottom)), b, gear)
}

func ratio(idx rowIndex, b Bounds, gear Coord) (int, error) {
	adjacent := idx.within(b)
	if len(adjacent) != GearNeighbourCount {
		return 0, &InvalidGearError{Gear: gear, Found: len(adjacent)}
	}
	x, y := adjacent[0].Value, adjacent[1].Value
	product, ok := checkedMul(x, y)
	if !ok {
		return 0, &OverflowError{Op: "ratio", At: gear, A: x, B: y}
	}
	return product, nil
}
