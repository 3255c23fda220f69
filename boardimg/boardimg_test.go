package boardimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/maxhully/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard(t *testing.T, spec *bingo.BoardSpec) *bingo.Board {
	t.Helper()
	pool := make(bingo.ValuePool, 30)
	for i := range pool {
		pool[i] = fmt.Sprintf("square number %d", i)
	}
	board, err := bingo.NewGenerator(bingo.NewRand("boardimg")).Generate(pool, spec)
	require.NoError(t, err)
	return board
}

func gray(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r + g + b) / 3 >> 8
}

func TestDrawBoard(t *testing.T) {
	spec := bingo.DefaultSpec()
	painter, err := NewPainter(&spec)
	require.NoError(t, err)

	surface, err := painter.Draw(testBoard(t, &spec))
	require.NoError(t, err)
	assert.False(t, surface.Empty())
	assert.Greater(t, surface.LineHeight(), 0.0)

	var buf bytes.Buffer
	require.NoError(t, surface.Encoder(bingo.PNG)(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 1024, bounds.Dx())
	assert.Equal(t, 1024, bounds.Dy())

	// The margin is background, the middle of the top border is a grid line.
	assert.Greater(t, gray(img.At(5, 5)), uint32(240))
	assert.Less(t, gray(img.At(512, 20)), uint32(15))
	assert.Less(t, gray(img.At(20, 512)), uint32(15))
	// The grid line between the first and second column.
	x := int(spec.CellRect(0, 1).Min.X)
	assert.Less(t, gray(img.At(x, 100)), uint32(15))
}

func TestDrawBoardColors(t *testing.T) {
	spec := bingo.DefaultSpec()
	spec.Background = color.NRGBA{0, 0, 0xff, 0xff}
	spec.Line = color.NRGBA{0xff, 0, 0, 0xff}
	painter, err := NewPainter(&spec)
	require.NoError(t, err)
	surface, err := painter.Draw(testBoard(t, &spec))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, surface.Encoder(bingo.PNG)(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xff}, [3]uint32{r >> 8, g >> 8, b >> 8})
	r, g, b, _ = img.At(512, 20).RGBA()
	assert.Equal(t, [3]uint32{0xff, 0, 0}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestEncodeJPEG(t *testing.T) {
	spec := bingo.DefaultSpec()
	spec.Rows, spec.Columns = 3, 3
	spec.CellSize, spec.Margin = 100, 10
	painter, err := NewPainter(&spec)
	require.NoError(t, err)
	surface, err := painter.Draw(testBoard(t, &spec))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, surface.Encoder(bingo.JPEG)(&buf))
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 320, cfg.Height)

	_, err = jpeg.Decode(&buf)
	assert.NoError(t, err)
}

func TestLoadFontMissing(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "nope.ttf"))
	assert.ErrorIs(t, err, bingo.ErrRender)

	spec := bingo.DefaultSpec()
	spec.FontFile = "No Such Font Anywhere"
	_, err = NewPainter(&spec)
	assert.ErrorIs(t, err, bingo.ErrRender)
}

func TestLoadDefaultFont(t *testing.T) {
	font, err := LoadFont("")
	require.NoError(t, err)
	assert.NotNil(t, font)
}
