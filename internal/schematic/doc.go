// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package schematic analyzes engine schematics: rectangular grids of digits,
// '.' and symbols.
//
// # Core Concepts
//
//   - Grid: the parsed schematic. Immutable once built by Parse.
//
//   - Mask: a boolean overlay of the grid marking every cell that lies within
//     one step (diagonals included) of a marked rune. SymbolMask marks around
//     every symbol, GearMask only around '*'.
//
//   - Number: a maximal horizontal run of digits with its row and inclusive
//     column span.
//
// Part numbers are the numbers touching the symbol mask. A gear is a '*' with
// exactly two neighbouring numbers, and its ratio is their product.
//
// Every function takes the grid it works on explicitly; the package keeps no
// state between calls.
package schematic
