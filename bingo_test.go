package bingo

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePool(n int) ValuePool {
	pool := make(ValuePool, n)
	for i := range pool {
		pool[i] = fmt.Sprintf("value %d", i)
	}
	return pool
}

func fiveByFive() *BoardSpec {
	spec := DefaultSpec()
	return &spec
}

func TestGenerateHasNoDuplicatesAndOneFreeCenter(t *testing.T) {
	spec := fiveByFive()
	pool := makePool(60)
	for seed := range 20 {
		gen := NewGenerator(NewRand(fmt.Sprint(seed)))
		board, err := gen.Generate(pool, spec)
		require.NoError(t, err)

		assert.Equal(t, 5, board.Rows)
		assert.Equal(t, 5, board.Columns)
		require.Len(t, board.Cells, 5)

		free := 0
		for r, row := range board.Cells {
			require.Len(t, row, 5)
			for c, cell := range row {
				if cell.Free {
					free++
					assert.Equal(t, 2, r)
					assert.Equal(t, 2, c)
					assert.Equal(t, "FREE", cell.Value)
				}
			}
		}
		assert.Equal(t, 1, free)

		values := board.Values()
		assert.Len(t, values, 24)
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		assert.Len(t, slices.Compact(sorted), 24, "board has repeated values: %v", values)
		for _, v := range values {
			assert.Contains(t, pool, v)
		}
	}
}

func TestGenerateUsesWholePoolWhenExactlyEnough(t *testing.T) {
	pool := makePool(24)
	board, err := NewGenerator(NewRand("exact")).Generate(pool, fiveByFive())
	require.NoError(t, err)
	assert.ElementsMatch(t, pool, board.Values())
}

func TestGenerateInsufficientValues(t *testing.T) {
	board, err := NewGenerator(NewRand("")).Generate(makePool(10), fiveByFive())
	assert.ErrorIs(t, err, ErrInsufficientValues)
	assert.Nil(t, board)

	// One short of the 24 that are needed.
	_, err = NewGenerator(NewRand("")).Generate(makePool(23), fiveByFive())
	assert.ErrorIs(t, err, ErrInsufficientValues)
}

func TestGenerateCountsRepeatedValuesOnce(t *testing.T) {
	pool := makePool(23)
	pool = append(pool, pool[0])
	_, err := NewGenerator(NewRand("")).Generate(pool, fiveByFive())
	assert.ErrorIs(t, err, ErrInsufficientValues)

	pool = append(pool, "one more")
	board, err := NewGenerator(NewRand("")).Generate(pool, fiveByFive())
	require.NoError(t, err)
	assert.ElementsMatch(t, pool.Distinct(), board.Values())
}

func TestGenerateWithoutFreeCell(t *testing.T) {
	spec := fiveByFive()
	spec.FreeCell = false
	_, err := NewGenerator(NewRand("")).Generate(makePool(24), spec)
	assert.ErrorIs(t, err, ErrInsufficientValues)

	board, err := NewGenerator(NewRand("")).Generate(makePool(25), spec)
	require.NoError(t, err)
	assert.Len(t, board.Values(), 25)
	assert.False(t, board.At(2, 2).Free)
}

func TestGenerateRectangularBoard(t *testing.T) {
	spec := fiveByFive()
	spec.Rows, spec.Columns = 3, 7
	board, err := NewGenerator(NewRand("wide")).Generate(makePool(20), spec)
	require.NoError(t, err)
	assert.True(t, board.At(1, 3).Free)
	assert.Len(t, board.Values(), 20)
}

func TestGenerateRejectsBadShapes(t *testing.T) {
	gen := NewGenerator(NewRand(""))
	for _, tc := range []struct {
		rows, cols int
		free       bool
	}{
		{0, 5, false},
		{5, -1, false},
		{4, 4, true},
		{5, 4, true},
		// rows*columns overflows an int.
		{math.MaxInt / 2, math.MaxInt / 2, false},
		{math.MaxInt, 3, true},
	} {
		spec := fiveByFive()
		spec.Rows, spec.Columns, spec.FreeCell = tc.rows, tc.cols, tc.free
		_, err := gen.Generate(makePool(100), spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, "%dx%d free=%v", tc.rows, tc.cols, tc.free)
	}

	spec := fiveByFive()
	spec.Rows, spec.Columns, spec.FreeCell = 4, 4, false
	_, err := gen.Generate(makePool(16), spec)
	assert.NoError(t, err)
}

func TestSameSeedSameBoard(t *testing.T) {
	pool := makePool(75)
	a, err := NewGenerator(NewRand("friday night")).Generate(pool, fiveByFive())
	require.NoError(t, err)
	b, err := NewGenerator(NewRand("friday night")).Generate(pool, fiveByFive())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewGenerator(NewRand("saturday night")).Generate(pool, fiveByFive())
	require.NoError(t, err)
	assert.NotEqual(t, a.Values(), c.Values())
}

func TestUnseededBoardsDiffer(t *testing.T) {
	pool := makePool(75)
	differ := false
	for range 5 {
		a, err := NewGenerator(NewRand("")).Generate(pool, fiveByFive())
		require.NoError(t, err)
		b, err := NewGenerator(NewRand("")).Generate(pool, fiveByFive())
		require.NoError(t, err)
		if !slices.Equal(a.Values(), b.Values()) {
			differ = true
			break
		}
	}
	assert.True(t, differ, "five pairs of unseeded boards were all identical")
}

func TestSampleIsRoughlyUniform(t *testing.T) {
	spec := fiveByFive()
	spec.Rows, spec.Columns, spec.FreeCell = 1, 1, false
	pool := ValuePool{"a", "b", "c"}
	gen := NewGenerator(NewRand("uniform"))

	counts := make(map[string]int)
	const runs = 3000
	for range runs {
		board, err := gen.Generate(pool, spec)
		require.NoError(t, err)
		counts[board.At(0, 0).Value]++
	}
	for _, v := range pool {
		assert.InDelta(t, runs/3, counts[v], 150, "value %q picked %d times", v, counts[v])
	}
}

func TestGenerateN(t *testing.T) {
	gen := NewGenerator(NewRand("several"))
	boards, err := gen.GenerateN(makePool(40), fiveByFive(), 3)
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.NotEqual(t, boards[0].Values(), boards[1].Values())

	boards, err = gen.GenerateN(makePool(10), fiveByFive(), 3)
	assert.ErrorIs(t, err, ErrInsufficientValues)
	assert.Nil(t, boards)

	_, err = gen.GenerateN(makePool(40), fiveByFive(), 0)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestValidate(t *testing.T) {
	spec := DefaultSpec()
	assert.NoError(t, spec.Validate())

	for name, mutate := range map[string]func(*BoardSpec){
		"even with free":  func(s *BoardSpec) { s.Rows = 6 },
		"zero cell size":  func(s *BoardSpec) { s.CellSize = 0 },
		"negative margin": func(s *BoardSpec) { s.Margin = -1 },
		"zero font size":  func(s *BoardSpec) { s.FontSize = 0 },
		"zero wrap":       func(s *BoardSpec) { s.WrapWidth = 0 },
	} {
		spec := DefaultSpec()
		mutate(&spec)
		assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec, name)
	}
}

func TestDistinct(t *testing.T) {
	pool := ValuePool{"b", "a", "b", "c", "a"}
	assert.Equal(t, ValuePool{"b", "a", "c"}, pool.Distinct())
}
