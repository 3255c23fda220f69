package bingo

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

var (
	ErrInsufficientValues = errors.New("not enough values for the board")
	ErrInputRead          = errors.New("could not read input")
	ErrRender             = errors.New("could not render board")
	ErrOutputWrite        = errors.New("could not write output")
	ErrInvalidSpec        = errors.New("invalid board settings")
)

// The candidate values read from the input file.
type ValuePool []string

// Distinct returns the pool with repeated values removed, keeping the first
// occurrence of each.
func (p ValuePool) Distinct() ValuePool {
	seen := make(map[string]struct{}, len(p))
	distinct := make(ValuePool, 0, len(p))
	for _, v := range p {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	return distinct
}

const DefaultFreeText = "FREE"

// BoardSpec holds everything that controls the shape of a board and how it's drawn.
// Sizes are in pixels.
type BoardSpec struct {
	Rows     int
	Columns  int
	FreeCell bool
	FreeText string

	CellSize  float64
	Margin    float64
	LineWidth float64
	WrapWidth int

	// Either a path to a TTF/OTF file or the name of an installed font. Empty means
	// the embedded Go Regular font.
	FontFile string
	FontSize float64

	Background color.Color
	Text       color.Color
	Line       color.Color
}

// These match the old Python script: a 1024px square, 20px borders, 5px lines.
const (
	DefaultSize       = 5
	DefaultResolution = 1024
	DefaultMargin     = 20.0
	DefaultLineWidth  = 5.0
	DefaultFontSize   = 20.0
	DefaultWrapWidth  = 19
)

func DefaultSpec() BoardSpec {
	spec := BoardSpec{
		Rows:       DefaultSize,
		Columns:    DefaultSize,
		FreeCell:   true,
		FreeText:   DefaultFreeText,
		Margin:     DefaultMargin,
		LineWidth:  DefaultLineWidth,
		WrapWidth:  DefaultWrapWidth,
		FontSize:   DefaultFontSize,
		Background: color.White,
		Text:       color.Black,
		Line:       color.Black,
	}
	spec.FitResolution(DefaultResolution)
	return spec
}

func (s *BoardSpec) Validate() error {
	if err := s.validateShape(); err != nil {
		return err
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidSpec, s.CellSize)
	}
	if s.Margin < 0 || s.LineWidth < 0 {
		return fmt.Errorf("%w: margin and line width can't be negative", ErrInvalidSpec)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %v", ErrInvalidSpec, s.FontSize)
	}
	if s.WrapWidth < 1 {
		return fmt.Errorf("%w: wrap width must be at least 1, got %d", ErrInvalidSpec, s.WrapWidth)
	}
	return nil
}

// Only the grid shape matters for picking values; the rest is for drawing.
func (s *BoardSpec) validateShape() error {
	if s.Rows < 1 || s.Columns < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidSpec, s.Rows, s.Columns)
	}
	if s.Rows > math.MaxInt/s.Columns {
		return fmt.Errorf("%w: board is too big, got %dx%d", ErrInvalidSpec, s.Rows, s.Columns)
	}
	if s.FreeCell && (s.Rows%2 == 0 || s.Columns%2 == 0) {
		return fmt.Errorf("%w: a free cell needs an odd number of rows and columns, got %dx%d", ErrInvalidSpec, s.Rows, s.Columns)
	}
	return nil
}

// Center returns the position of the free cell.
func (s *BoardSpec) Center() (row, col int) {
	return s.Rows / 2, s.Columns / 2
}

// RequiredValues is the number of pool values a board consumes.
func (s *BoardSpec) RequiredValues() int {
	n := s.Rows * s.Columns
	if s.FreeCell {
		n--
	}
	return n
}

type Cell struct {
	Value string
	Free  bool
}

// Board is a generated card. Cells is indexed [row][column].
type Board struct {
	Rows    int
	Columns int
	Cells   [][]Cell
}

func (b *Board) At(row, col int) Cell {
	return b.Cells[row][col]
}

// Values lists the non-free cell values in row-major order.
func (b *Board) Values() []string {
	values := make([]string, 0, b.Rows*b.Columns)
	for _, row := range b.Cells {
		for _, cell := range row {
			if !cell.Free {
				values = append(values, cell.Value)
			}
		}
	}
	return values
}

// Generator picks and arranges the values for boards. It does no drawing.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one board from the pool. Duplicate pool values are only
// counted once, so a board never shows the same value twice.
func (g *Generator) Generate(pool ValuePool, spec *BoardSpec) (*Board, error) {
	distinct, err := checkPool(pool, spec)
	if err != nil {
		return nil, err
	}
	return g.arrange(distinct, spec), nil
}

// GenerateN builds n boards from the same random stream. It fails before
// building anything if the pool is too small.
func (g *Generator) GenerateN(pool ValuePool, spec *BoardSpec, n int) ([]*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: number of cards must be 1 or more, got %d", ErrInvalidSpec, n)
	}
	distinct, err := checkPool(pool, spec)
	if err != nil {
		return nil, err
	}
	boards := make([]*Board, 0, n)
	for range n {
		boards = append(boards, g.arrange(distinct, spec))
	}
	return boards, nil
}

func checkPool(pool ValuePool, spec *BoardSpec) (ValuePool, error) {
	if err := spec.validateShape(); err != nil {
		return nil, err
	}
	distinct := pool.Distinct()
	if required := spec.RequiredValues(); len(distinct) < required {
		return nil, fmt.Errorf("%w: a %dx%d board needs %d distinct values, got %d",
			ErrInsufficientValues, spec.Rows, spec.Columns, required, len(distinct))
	}
	return distinct, nil
}

func (g *Generator) arrange(pool ValuePool, spec *BoardSpec) *Board {
	sample := g.sample(pool, spec.RequiredValues())
	freeRow, freeCol := spec.Center()

	board := &Board{
		Rows:    spec.Rows,
		Columns: spec.Columns,
		Cells:   make([][]Cell, spec.Rows),
	}
	next := 0
	for r := range spec.Rows {
		board.Cells[r] = make([]Cell, spec.Columns)
		for c := range spec.Columns {
			if spec.FreeCell && r == freeRow && c == freeCol {
				board.Cells[r][c] = Cell{Value: spec.FreeText, Free: true}
				continue
			}
			board.Cells[r][c] = Cell{Value: sample[next]}
			next++
		}
	}
	return board
}

// sample draws k values without replacement with a partial Fisher-Yates shuffle
// over the pool indices. The draw order is the placement order.
func (g *Generator) sample(pool ValuePool, k int) []string {
	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}
	out := make([]string, k)
	for i := range k {
		j := i + g.rng.IntN(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		out[i] = pool[indices[i]]
	}
	return out
}
