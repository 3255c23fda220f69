package bingo

import (
	"fmt"
	"image/color"
)

// Surface is something a board can be drawn onto. Coordinates are pixels with
// the origin in the top left corner.
type Surface interface {
	Fill(c color.Color) error
	DrawLine(from, to Point, c color.Color, width float64) error
	// DrawText draws a single line of text, horizontally centered on at.X, with
	// the top of its line box at at.Y.
	DrawText(at Point, text string, c color.Color) error
	LineHeight() float64
}

// Render draws the background, the grid lines and every cell's text.
func Render(s Surface, b *Board, spec *BoardSpec) error {
	if err := s.Fill(spec.Background); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := drawGrid(s, b, spec); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	for r := range b.Rows {
		for c := range b.Columns {
			if err := drawCellText(s, b.At(r, c).Value, spec.CellRect(r, c), spec); err != nil {
				return fmt.Errorf("%w: cell (%d, %d): %w", ErrRender, r, c, err)
			}
		}
	}
	return nil
}

func drawGrid(s Surface, b *Board, spec *BoardSpec) error {
	grid := spec.GridRect()
	for r := 0; r <= b.Rows; r++ {
		y := grid.Min.Y + float64(r)*spec.CellSize
		if err := s.DrawLine(Point{grid.Min.X, y}, Point{grid.Max.X, y}, spec.Line, spec.LineWidth); err != nil {
			return err
		}
	}
	for c := 0; c <= b.Columns; c++ {
		x := grid.Min.X + float64(c)*spec.CellSize
		if err := s.DrawLine(Point{x, grid.Min.Y}, Point{x, grid.Max.Y}, spec.Line, spec.LineWidth); err != nil {
			return err
		}
	}
	return nil
}

// The block of wrapped lines is centered in the cell as a whole.
func drawCellText(s Surface, text string, cell Rect, spec *BoardSpec) error {
	lines := WrapText(text, spec.WrapWidth)
	lineHeight := s.LineHeight()
	center := cell.Center()
	y := center.Y - float64(len(lines))*lineHeight/2
	for _, line := range lines {
		if line != "" {
			if err := s.DrawText(Point{center.X, y}, line, spec.Text); err != nil {
				return err
			}
		}
		y += lineHeight
	}
	return nil
}
