// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package schematic

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySchematic = errors.New("empty schematic")
	ErrRaggedRows     = errors.New("rows have unequal length")
	ErrNumberOverflow = errors.New("number does not fit into an integer")

	ErrInvalidGear = errors.New("invalid gear")
	ErrNotAGear    = errors.New("not a gear")
)

// ParseError describes malformed schematic input.
type ParseError struct {
	Kind error
	Line int // 1-based, 0 when the error is not tied to a line
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return "parse schematic: " + msg
}

func (e *ParseError) Unwrap() error { return e.Kind }

// InvalidGearError is returned for a '*' that does not have exactly two
// neighbouring numbers.
type InvalidGearError struct {
	Gear  Coord
	Found int
}

func (e *InvalidGearError) Error() string {
	if e.Found > GearNeighbourCount {
		return fmt.Sprintf("invalid gear at %s: too many neighbours, %d > %d", e.Gear, e.Found, GearNeighbourCount)
	}
	return fmt.Sprintf("invalid gear at %s: too few neighbours, %d < %d", e.Gear, e.Found, GearNeighbourCount)
}

// Is reports ErrInvalidGear as the error kind.
func (e *InvalidGearError) Is(target error) bool { return target == ErrInvalidGear }

// OverflowError reports a gear ratio or a total that does not fit into an
// int. It matches ErrNumberOverflow.
type OverflowError struct {
	Op   string // "ratio", "part sum" or "gear sum"
	At   Coord  // gear being evaluated or added, zero for the part sum
	A, B int    // operands of the failed operation
}

func (e *OverflowError) Error() string {
	if e.Op == "part sum" {
		return fmt.Sprintf("%s: %s %d + %d", ErrNumberOverflow, e.Op, e.A, e.B)
	}
	sign := "+"
	if e.Op == "ratio" {
		sign = "*"
	}
	return fmt.Sprintf("%s: %s at %s: %d %s %d", ErrNumberOverflow, e.Op, e.At, e.A, sign, e.B)
}

func (e *OverflowError) Unwrap() error { return ErrNumberOverflow }
