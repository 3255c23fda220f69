package bingo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oxtoacart/bpool"
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// Extension is the file extension used for generated file names.
func (f Format) Extension() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// ParseFormat accepts a format name ("png", "jpg", "jpeg"), with or without a
// leading dot, in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: unsupported image format %q (use png or jpeg)", ErrOutputWrite, name)
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no file extension (use .png, .jpg or .jpeg)", ErrOutputWrite, path)
	}
	return ParseFormat(ext)
}

// CardPath is where card i goes when several cards are written to dir.
func CardPath(dir string, i int, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("board__%d%s", i, format.Extension()))
}

// EncodeFunc writes a finished image in some format.
type EncodeFunc func(w io.Writer) error

// ImageWriter writes encoded images to files without ever leaving a partial file
// behind. Each image is encoded into a pooled buffer first, then written to a
// temporary file next to the destination and renamed into place.
type ImageWriter struct {
	bufpool *bpool.BufferPool
}

func NewImageWriter() *ImageWriter {
	return &ImageWriter{bufpool: bpool.NewBufferPool(4)}
}

func (iw *ImageWriter) WriteFile(path string, encode EncodeFunc) error {
	buf := iw.bufpool.Get()
	defer iw.bufpool.Put(buf)
	if err := encode(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	tmpName := tmp.Name()
	// Does nothing once the rename has happened.
	defer os.Remove(tmpName)

	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return nil
}

// PrepareDir creates the output directory for a multi-card run.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}
