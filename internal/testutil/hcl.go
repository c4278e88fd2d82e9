package testutil

import (
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ExampleSchematic is the reference schematic used throughout the tests.
const ExampleSchematic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

// caseEvalContext exposes the reference schematic as `example` and a few
// string functions, so fixtures can assemble grids from lists of rows:
//
//	grid = join("\n", ["1*1", "..."])
func caseEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"example": cty.StringVal(ExampleSchematic),
		},
		Functions: map[string]function.Function{
			"join":    stdlib.JoinFunc,
			"replace": stdlib.ReplaceFunc,
			"chomp":   stdlib.ChompFunc,
		},
	}
}

// DecodeCases parses an HCL fixture file into its case blocks.
func DecodeCases(path string) ([]*Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, diags)
	}

	var parsed caseFile
	diags = gohcl.DecodeBody(file.Body, caseEvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode case file %s: %w", path, diags)
	}

	seen := make(map[string]bool, len(parsed.Cases))
	for _, c := range parsed.Cases {
		if seen[c.Name] {
			return nil, fmt.Errorf("case file %s: duplicate case %q", path, c.Name)
		}
		seen[c.Name] = true
		if (c.Expect == nil) == (c.Error == "") {
			return nil, fmt.Errorf("case file %s: case %q needs exactly one of expect or error", path, c.Name)
		}
		for _, g := range c.Gears {
			if len(g.At) != 2 {
				return nil, fmt.Errorf("case file %s: case %q: gear at must be [row, col]", path, c.Name)
			}
		}
	}
	return parsed.Cases, nil
}

// LoadCases is DecodeCases for tests; it fails the test on any error.
func LoadCases(t *testing.T, path string) []*Case {
	t.Helper()
	cases, err := DecodeCases(path)
	require.NoError(t, err)
	require.NotEmpty(t, cases, "case file %s declares no cases", path)
	return cases
}
