package bingo

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// LoadSpecFile applies the settings in an INI file on top of spec. Keys that
// aren't in the file keep their current value.
//
//	[board]   rows, columns, size, free, free_text
//	[layout]  resolution, cell_size, margin, line_width, wrap
//	[font]    file, size
//	[colors]  background, text, line
func LoadSpecFile(path string, spec *BoardSpec) error {
	// Comments need a space before them, so "text = #333" is a color and not a comment.
	cfg, err := ini.LoadSources(ini.LoadOptions{SpaceBeforeInlineComment: true}, path)
	if err != nil {
		return fmt.Errorf("%w: config %s: %w", ErrInvalidSpec, path, err)
	}
	if err := applyConfig(cfg, spec); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func applyConfig(cfg *ini.File, spec *BoardSpec) error {
	board := cfg.Section("board")
	if err := setInt(board, "size", &spec.Rows); err != nil {
		return err
	}
	if board.HasKey("size") {
		spec.Columns = spec.Rows
	}
	if err := setInt(board, "rows", &spec.Rows); err != nil {
		return err
	}
	if err := setInt(board, "columns", &spec.Columns); err != nil {
		return err
	}
	if board.HasKey("free") {
		v, err := board.Key("free").Bool()
		if err != nil {
			return fmt.Errorf("%w: [board] free: %w", ErrInvalidSpec, err)
		}
		spec.FreeCell = v
	}
	if board.HasKey("free_text") {
		spec.FreeText = board.Key("free_text").String()
	}

	layout := cfg.Section("layout")
	if err := setFloat(layout, "margin", &spec.Margin); err != nil {
		return err
	}
	if err := setFloat(layout, "line_width", &spec.LineWidth); err != nil {
		return err
	}
	if err := setInt(layout, "wrap", &spec.WrapWidth); err != nil {
		return err
	}
	// The cell size depends on the margin and the grid, so it's worked out last.
	if layout.HasKey("cell_size") {
		if err := setFloat(layout, "cell_size", &spec.CellSize); err != nil {
			return err
		}
	} else {
		resolution := DefaultResolution
		if err := setInt(layout, "resolution", &resolution); err != nil {
			return err
		}
		spec.FitResolution(resolution)
	}

	font := cfg.Section("font")
	if font.HasKey("file") {
		spec.FontFile = font.Key("file").String()
	}
	if err := setFloat(font, "size", &spec.FontSize); err != nil {
		return err
	}

	colors := cfg.Section("colors")
	for key, dst := range map[string]*color.Color{
		"background": &spec.Background,
		"text":       &spec.Text,
		"line":       &spec.Line,
	} {
		if !colors.HasKey(key) {
			continue
		}
		c, err := ParseHexColor(colors.Key(key).String())
		if err != nil {
			return fmt.Errorf("[colors] %s: %w", key, err)
		}
		*dst = c
	}
	return nil
}

func setInt(sec *ini.Section, key string, dst *int) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		return fmt.Errorf("%w: [%s] %s: %w", ErrInvalidSpec, sec.Name(), key, err)
	}
	*dst = v
	return nil
}

func setFloat(sec *ini.Section, key string, dst *float64) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return fmt.Errorf("%w: [%s] %s: %w", ErrInvalidSpec, sec.Name(), key, err)
	}
	*dst = v
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the "#" is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidSpec, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidSpec, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
