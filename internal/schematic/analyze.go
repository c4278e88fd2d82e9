// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

import "errors"

// PartNumbers returns the numbers with at least one digit next to a symbol.
func PartNumbers(g *Grid) []Number {
	return touching(SymbolMask(g), ExtractNumbers(g))
}

// touching keeps the numbers with at least one cell marked in mask.
func touching(mask *Mask, numbers []Number) []Number {
	var kept []Number
	for _, n := range numbers {
		if mask.Any(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

// SumPartNumbers sums the values of all part numbers.
func SumPartNumbers(g *Grid) (int, error) {
	return sum(PartNumbers(g))
}

// SumGearRatios sums the ratios of all valid gears. A '*' without exactly two
// neighbouring numbers contributes nothing.
func SumGearRatios(g *Grid) (int, error) {
	r, err := Analyze(g)
	if err != nil {
		return 0, err
	}
	return r.GearSum, nil
}

// Report holds the results of a full analysis.
type Report struct {
	PartSum int
	GearSum int
	Parts   int // numbers counted into PartSum
	Numbers int
	// GearCandidates counts the numbers inside the gear mask; only those are
	// looked at when evaluating gears.
	GearCandidates int
	Gears          int // '*' cells with exactly two neighbours
	SkippedGears   []*InvalidGearError
}

// Analyze extracts numbers once and computes both sums from them. The only
// error it returns is an *OverflowError.
func Analyze(g *Grid) (Report, error) {
	numbers := ExtractNumbers(g)
	parts := touching(SymbolMask(g), numbers)

	partSum, err := sum(parts)
	if err != nil {
		return Report{}, err
	}

	candidates := touching(GearMask(g), numbers)
	r := Report{
		PartSum:        partSum,
		Parts:          len(parts),
		Numbers:        len(numbers),
		GearCandidates: len(candidates),
	}

	idx := indexByRow(candidates)
	for _, gear := range Gears(g) {
		v, err := ratio(idx, g.Neighbourhood(gear), gear)
		var invalid *InvalidGearError
		if errors.As(err, &invalid) {
			r.SkippedGears = append(r.SkippedGears, invalid)
			continue
		}
		if err != nil {
			return Report{}, err
		}

		total, ok := checkedAdd(r.GearSum, v)
		if !ok {
			return Report{}, &OverflowError{Op: "gear sum", At: gear, A: r.GearSum, B: v}
		}
		r.GearSum = total
		r.Gears++
	}
	return r, nil
}

func sum(numbers []Number) (int, error) {
	total := 0
	for _, n := range numbers {
		next, ok := checkedAdd(total, n.Value)
		if !ok {
			return 0, &OverflowError{Op: "part sum", A: total, B: n.Value}
		}
		total = next
	}
	return total, nil
}
