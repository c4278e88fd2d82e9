package schematic

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGears_RowMajor(t *testing.T) {
	t.Parallel()

	gears := Gears(mustParse(t, example))

	assert.Equal(t, []Coord{{Row: 1, Col: 3}, {Row: 4, Col: 3}, {Row: 8, Col: 5}}, gears)
}

func TestEvaluateGear(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		grid      string
		at        Coord
		wantRatio int
		wantFound int // checked when wantRatio is 0
	}{
		{name: "two numbers above and below", grid: example, at: Coord{1, 3}, wantRatio: 467 * 35},
		{name: "single neighbour", grid: example, at: Coord{4, 3}, wantFound: 1},
		{name: "left and right", grid: "12*34", at: Coord{0, 2}, wantRatio: 408},
		{name: "diagonals only", grid: "5...\n.*..\n..7.", at: Coord{1, 1}, wantRatio: 35},
		{name: "corner gear", grid: "*2\n3.", at: Coord{0, 0}, wantRatio: 6},
		{name: "numbers one column too far", grid: "1...2\n..*..\n1...2", at: Coord{1, 2}, wantFound: 0},
		{name: "four neighbours", grid: "1.1\n.*.\n1.1", at: Coord{1, 1}, wantFound: 4},
		{name: "wide numbers share the row", grid: "100.200\n...*...", at: Coord{1, 3}, wantRatio: 20000},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := mustParse(t, tc.grid)

			ratio, err := EvaluateGear(g, tc.at)

			if tc.wantRatio != 0 {
				require.NoError(t, err)
				assert.Equal(t, tc.wantRatio, ratio)
				return
			}
			var invalid *InvalidGearError
			require.True(t, errors.As(err, &invalid), "expected *InvalidGearError, got %v", err)
			assert.ErrorIs(t, err, ErrInvalidGear)
			assert.Equal(t, tc.at, invalid.Gear)
			assert.Equal(t, tc.wantFound, invalid.Found)
		})
	}
}

func TestEvaluateGear_NotAGear(t *testing.T) {
	t.Parallel()

	g := mustParse(t, example)

	for _, at := range []Coord{{Row: 3, Col: 6}, {Row: 0, Col: 0}, {Row: -1, Col: 3}, {Row: 1, Col: 10}} {
		_, err := EvaluateGear(g, at)
		require.ErrorIs(t, err, ErrNotAGear, "coordinate %s", at)
		assert.NotErrorIs(t, err, ErrInvalidGear)
	}
}

func TestInvalidGearError_Message(t *testing.T) {
	t.Parallel()

	few := &InvalidGearError{Gear: Coord{Row: 4, Col: 3}, Found: 1}
	many := &InvalidGearError{Gear: Coord{Row: 1, Col: 1}, Found: 3}

	assert.Equal(t, "invalid gear at (4, 3): too few neighbours, 1 < 2", few.Error())
	assert.Equal(t, "invalid gear at (1, 1): too many neighbours, 3 > 2", many.Error())
}

// The row index used by the summation must agree with the row-restricted
// scan done by EvaluateGear.
func TestEvaluateGear_MatchesIndexedEvaluation(t *testing.T) {
	t.Parallel()

	grids := []string{
		example,
		"1.1\n.*.\n1.1",
		"12*34\n*..*.\n5*6*7",
		"*2*\n3*4\n*5*",
	}

	for _, text := range grids {
		g := mustParse(t, text)
		idx := indexByRow(ExtractNumbers(g))

		for _, gear := range Gears(g) {
			wantRatio, wantErr := EvaluateGear(g, gear)
			gotRatio, gotErr := ratio(idx, g.Neighbourhood(gear), gear)

			assert.Equal(t, wantRatio, gotRatio, "gear %s", gear)
			assert.Equal(t, wantErr, gotErr, "gear %s", gear)
		}
	}
}

func TestEvaluateGear_RatioOverflow(t *testing.T) {
	t.Parallel()

	nines := strings.Repeat("9", 18)
	g := mustParse(t, nines+"*"+nines)

	ratio, err := EvaluateGear(g, Coord{Row: 0, Col: 18})

	require.ErrorIs(t, err, ErrNumberOverflow)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, Coord{Row: 0, Col: 18}, overflow.At)
	assert.Equal(t, 999999999999999999, overflow.A)
	assert.Equal(t, 999999999999999999, overflow.B)
	assert.Contains(t, err.Error(), "ratio at (0, 18)")
	assert.Zero(t, ratio)
}
