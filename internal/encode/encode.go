package encode

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"smphr/internal/raster"
)

// Format names an output file format.
type Format string

const (
	PNG  Format = "png"
	GIF  Format = "gif"
	WebP Format = "webp"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	TGA  Format = "tga"
)

// Formats lists every supported format.
var Formats = []Format{PNG, GIF, WebP, BMP, TIFF, TGA}

// ErrUnknownFormat is returned for a format or extension with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat accepts a format name or extension, with or without the dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WebP, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "tga":
		return TGA, nil
	}
	return "", fmt.Errorf("encode: %q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("encode: %s has no extension: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

// Ext returns the file extension for f, with the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img *image.Paletted, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case GIF:
		err = gif.Encode(w, img, nil)
	case WebP:
		err = nativewebp.Encode(w, toNRGBA(img), nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, toNRGBA(img))
	default:
		return fmt.Errorf("encode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", f, err)
	}
	return nil
}

// Options controls Save.
type Options struct {
	Format Format // empty means: from the file extension
	Scale  int    // integer upscale factor, <= 1 keeps the canvas size
}

// Save encodes c and writes it to path, creating parent directories.
func Save(path string, c *raster.Canvas, opts Options) error {
	f := opts.Format
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}

	if err := Encode(out, Image(c, opts.Scale), f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("encode: close %s: %w", path, err)
	}
	return nil
}
