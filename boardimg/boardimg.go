// Package boardimg draws bingo boards with tdewolff/canvas and encodes them as
// PNG or JPEG.
package boardimg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/maxhully/bingo"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas units are millimetres. At one dot per millimetre a unit is a pixel, so
// the board's pixel sizes can be used as-is.
var resolution = canvas.DPMM(1.0)

// Font sizes are given in pixels but canvas wants points.
const ptPerPx = 72.0 / 25.4

// Surface is a bingo.Surface backed by a canvas. Canvas puts the origin in the
// bottom left, so every y coordinate gets flipped on the way in.
type Surface struct {
	canvas *canvas.Canvas
	ctx    *canvas.Context
	font   *canvas.FontFamily
	size   float64 // in points
	width  float64
	height float64

	metrics canvas.FontMetrics
}

// Painter draws boards for one BoardSpec. The font is loaded once and shared by
// every board it draws.
type Painter struct {
	spec *bingo.BoardSpec
	font *canvas.FontFamily
}

func NewPainter(spec *bingo.BoardSpec) (*Painter, error) {
	font, err := LoadFont(spec.FontFile)
	if err != nil {
		return nil, err
	}
	return &Painter{spec: spec, font: font}, nil
}

// NewSurface returns a blank surface the size of the board image.
func (p *Painter) NewSurface() *Surface {
	// Whole pixels, or the rasterizer may round 1023.9999 down.
	w, h := p.spec.ImageSize()
	w, h = math.Round(w), math.Round(h)
	c := canvas.New(w, h)
	s := &Surface{
		canvas: c,
		ctx:    canvas.NewContext(c),
		font:   p.font,
		size:   p.spec.FontSize * ptPerPx,
		width:  w,
		height: h,
	}
	s.metrics = s.face(color.Black).Metrics()
	return s
}

// Draw renders a board onto a new surface.
func (p *Painter) Draw(b *bingo.Board) (*Surface, error) {
	s := p.NewSurface()
	if err := bingo.Render(s, b, p.spec); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFont loads a font from a file, or an installed font by name. An empty
// name gives the embedded Go Regular font.
func LoadFont(name string) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("board")
	var err error
	switch {
	case name == "":
		err = family.LoadFont(goregular.TTF, 0, canvas.FontRegular)
	case fileExists(name):
		err = family.LoadFontFile(name, canvas.FontRegular)
	default:
		err = family.LoadSystemFont(name, canvas.FontRegular)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: font %q: %w", bingo.ErrRender, name, err)
	}
	return family, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *Surface) face(c color.Color) *canvas.FontFace {
	return s.font.Face(s.size, c, canvas.FontRegular, canvas.FontNormal)
}

func (s *Surface) flip(p bingo.Point) (float64, float64) {
	return p.X, s.height - p.Y
}

func (s *Surface) Fill(c color.Color) error {
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.SetFillColor(c)
	s.ctx.SetStrokeColor(color.Transparent)
	s.ctx.DrawPath(0.0, 0.0, canvas.Rectangle(s.width, s.height))
	return nil
}

func (s *Surface) DrawLine(from, to bingo.Point, c color.Color, width float64) error {
	if width <= 0 {
		return nil
	}
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.SetFillColor(color.Transparent)
	s.ctx.SetStrokeColor(c)
	s.ctx.SetStrokeWidth(width)
	// Square caps close up the corners where the border lines meet.
	s.ctx.SetStrokeCapper(canvas.SquareCap)

	path := &canvas.Path{}
	path.MoveTo(s.flip(from))
	path.LineTo(s.flip(to))
	s.ctx.DrawPath(0.0, 0.0, path)
	return nil
}

func (s *Surface) DrawText(at bingo.Point, text string, c color.Color) error {
	// Put the glyphs in the middle of the line box, then find the baseline.
	m := s.metrics
	baseline := at.Y + (m.LineHeight-m.Ascent-m.Descent)/2 + m.Ascent
	x, y := s.flip(bingo.Point{X: at.X, Y: baseline})
	s.ctx.DrawText(x, y, canvas.NewTextLine(s.face(c), text, canvas.Center))
	return nil
}

func (s *Surface) LineHeight() float64 {
	return s.metrics.LineHeight
}

func (s *Surface) Empty() bool {
	return s.canvas.Empty()
}

// Encoder returns a function that writes the surface in the given format.
func (s *Surface) Encoder(format bingo.Format) bingo.EncodeFunc {
	var writer canvas.Writer
	switch format {
	case bingo.JPEG:
		writer = renderers.JPEG(resolution)
	default:
		writer = renderers.PNG(resolution)
	}
	return func(w io.Writer) error {
		return writer(w, s.canvas)
	}
}
