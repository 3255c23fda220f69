package bingo

import (
	"strings"
	"unicode/utf8"
)

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in image coordinates (origin top left, y
// pointing down).
type Rect struct {
	Min, Max Point
}

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// CellRect is the pixel rectangle of the cell at (row, col), both 0-indexed.
func (s *BoardSpec) CellRect(row, col int) Rect {
	topLeft := Point{
		X: s.Margin + float64(col)*s.CellSize,
		Y: s.Margin + float64(row)*s.CellSize,
	}
	return Rect{
		Min: topLeft,
		Max: Point{topLeft.X + s.CellSize, topLeft.Y + s.CellSize},
	}
}

// GridRect is the rectangle covering every cell.
func (s *BoardSpec) GridRect() Rect {
	return Rect{
		Min: Point{s.Margin, s.Margin},
		Max: Point{
			X: s.Margin + float64(s.Columns)*s.CellSize,
			Y: s.Margin + float64(s.Rows)*s.CellSize,
		},
	}
}

// ImageSize is the size of the whole picture: the grid plus a margin on every side.
func (s *BoardSpec) ImageSize() (width, height float64) {
	grid := s.GridRect()
	return grid.Width() + 2*s.Margin, grid.Height() + 2*s.Margin
}

// FitResolution picks the cell size so that the longer side of the image is
// size pixels.
func (s *BoardSpec) FitResolution(size int) {
	cells := max(s.Rows, s.Columns, 1)
	s.CellSize = (float64(size) - 2*s.Margin) / float64(cells)
}

// WrapText breaks text into lines of at most width characters, splitting on
// whitespace. Words longer than width are split across lines.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	flush := func() {
		if lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}
	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			// Fill what's left of the current line first, like Python's textwrap does.
			room := width
			if lineLen > 0 {
				room = width - lineLen - 1
			}
			if room <= 0 {
				flush()
				continue
			}
			head, tail := splitRunes(word, room)
			if lineLen > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(head)
			lineLen += room
			flush()
			word = tail
		}

		n := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+n > width {
			flush()
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	flush()
	return lines
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
