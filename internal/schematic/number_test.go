package schematic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumbers_Spans(t *testing.T) {
	t.Parallel()

	g := mustParse(t, "467..114..\n...*......\n..35..6337")

	want := []Number{
		{Value: 467, Digits: "467", Row: 0, Start: 0, End: 2},
		{Value: 114, Digits: "114", Row: 0, Start: 5, End: 7},
		{Value: 35, Digits: "35", Row: 2, Start: 2, End: 3},
		{Value: 6337, Digits: "6337", Row: 2, Start: 6, End: 9},
	}

	if diff := cmp.Diff(want, ExtractNumbers(g)); diff != "" {
		t.Errorf("numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNumbers_RunAtRowEnd(t *testing.T) {
	t.Parallel()

	g := mustParse(t, "..12\n34..\n5678")
	numbers := ExtractNumbers(g)

	require.Len(t, numbers, 3)
	assert.Equal(t, 12, numbers[0].Value)
	assert.Equal(t, 3, numbers[0].End)
	assert.Equal(t, 34, numbers[1].Value)
	assert.Equal(t, 5678, numbers[2].Value)
	assert.Equal(t, 4, numbers[2].Len())
}

func TestExtractNumbers_LeadingZeros(t *testing.T) {
	t.Parallel()

	numbers := ExtractNumbers(mustParse(t, "007*"))

	require.Len(t, numbers, 1)
	assert.Equal(t, 7, numbers[0].Value)
	assert.Equal(t, "007", numbers[0].Digits)
}

// Every row must be rebuilt exactly from its number tokens and the runes
// between them.
func TestExtractNumbers_PartitionsRows(t *testing.T) {
	t.Parallel()

	inputs := []string{
		example,
		"1.2.3\n.....\n45678",
		"9*9*9\n*9*9*",
		"..........",
		"1234567890",
	}

	for _, input := range inputs {
		g := mustParse(t, input)
		numbers := ExtractNumbers(g)

		byRow := make(map[int][]Number)
		for _, n := range numbers {
			byRow[n.Row] = append(byRow[n.Row], n)
		}

		for row := 0; row < g.Rows(); row++ {
			original := []rune(g.Row(row))
			var sb strings.Builder
			col := 0
			for _, n := range byRow[row] {
				require.GreaterOrEqual(t, n.Start, col, "overlapping tokens in row %d", row)
				for ; col < n.Start; col++ {
					require.False(t, IsDigit(original[col]), "digit outside token at %d,%d", row, col)
					sb.WriteRune(original[col])
				}
				sb.WriteString(n.Digits)
				col = n.End + 1
				if col < len(original) {
					require.False(t, IsDigit(original[col]), "token in row %d is not maximal", row)
				}
			}
			for ; col < len(original); col++ {
				require.False(t, IsDigit(original[col]))
				sb.WriteRune(original[col])
			}
			assert.Equal(t, string(original), sb.String())
		}
	}
}

func TestExtractRows_Clamped(t *testing.T) {
	t.Parallel()

	g := mustParse(t, example)

	top := ExtractRows(g, -1, 0)
	require.Len(t, top, 2)
	assert.Equal(t, 467, top[0].Value)
	assert.Equal(t, 114, top[1].Value)

	bottom := ExtractRows(g, 8, 20)
	require.Len(t, bottom, 2)
	assert.Equal(t, 664, bottom[0].Value)
	assert.Equal(t, 598, bottom[1].Value)

	assert.Empty(t, ExtractRows(g, 3, 3))
}

func TestNumber_Overlaps(t *testing.T) {
	t.Parallel()

	n := Number{Row: 2, Start: 4, End: 6}

	assert.True(t, n.Overlaps(Bounds{Top: 1, Left: 6, Bottom: 3, Right: 8}))
	assert.True(t, n.Overlaps(Bounds{Top: 2, Left: 2, Bottom: 2, Right: 4}))
	assert.False(t, n.Overlaps(Bounds{Top: 1, Left: 7, Bottom: 3, Right: 9}))
	assert.False(t, n.Overlaps(Bounds{Top: 3, Left: 4, Bottom: 4, Right: 6}))
}
