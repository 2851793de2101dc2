package storage

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prasetyowira/qrbooth/constant"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrNilImage is returned when a save is attempted without an image.
var ErrNilImage = errors.New("nil image")

// EncodeFunc writes an image to w in the format implied by ext.
type EncodeFunc func(w io.Writer, img image.Image, ext string) error

// Saver writes QR images to disk. The encoder is replaceable in tests.
type Saver struct {
	Encode EncodeFunc
}

// NewSaver creates a Saver using the standard encoders.
func NewSaver() *Saver {
	return &Saver{
		Encode: encodeImage,
	}
}

// ResolveDirectory determines where QR images are saved, in strict precedence:
// the explicit override directory, then the host's general output directory, then
// the picture's containing directory, then the current working directory. The
// result is always absolute and "~" shorthand is expanded.
func ResolveDirectory(override, generalDir, picturePath string) (string, error) {
	var dir string
	switch {
	case override != "":
		dir = ExpandUser(override)
	case generalDir != "":
		dir = ExpandUser(generalDir)
	case picturePath != "":
		abs, err := filepath.Abs(picturePath)
		if err != nil {
			return "", fmt.Errorf("resolving picture path: %w", err)
		}
		dir = filepath.Dir(abs)
	default:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Abs(dir)
}

// ExpandUser replaces a leading "~" with the current user's home directory.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// DeriveFilename builds the saved QR file name from the source picture's basename,
// or a count-based name when no picture path is available.
func DeriveFilename(picturePath string, count int, suffix, ext string) string {
	if suffix == "" {
		suffix = constant.DefaultSuffix
	}
	e := cleanExt(ext)
	if e == "" {
		e = constant.DefaultExt
	}

	var base string
	if picturePath != "" {
		name := filepath.Base(picturePath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	} else {
		base = fmt.Sprintf("picture_%d", count)
	}
	return base + suffix + "." + e
}

// Normalize adjusts the image's pixel format for the target extension: paletted
// images are promoted to RGBA, and alpha is flattened for extensions without an
// alpha channel. Go's image package has no plain RGB type, so "RGB" here means
// RGBA with every pixel fully opaque.
func Normalize(img image.Image, ext string) image.Image {
	out := img
	if _, ok := out.(*image.Paletted); ok {
		out = rgbaCopy(out)
	}

	switch cleanExt(ext) {
	case "jpg", "jpeg", "bmp":
		out = flattenOpaque(out)
	default:
		if _, ok := out.(*image.RGBA); !ok {
			out = rgbaCopy(out)
		}
	}
	return out
}

// Save writes the image to path, creating the destination directory if missing.
// A failed write is retried exactly once after forcing the image to RGBA; the
// second failure is returned.
func (s *Saver) Save(img image.Image, path string) error {
	if img == nil {
		return ErrNilImage
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}

	ext := cleanExt(strings.TrimPrefix(filepath.Ext(path), "."))
	if err := s.write(img, path, ext); err != nil {
		if retryErr := s.write(rgbaCopy(img), path, ext); retryErr != nil {
			return fmt.Errorf("saving %s (after RGBA fallback): %w", path, retryErr)
		}
	}
	return nil
}

// write performs one encode attempt to path.
func (s *Saver) write(img image.Image, path, ext string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, img, ext); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeImage picks the encoder matching the file extension.
func encodeImage(w io.Writer, img image.Image, ext string) error {
	switch ext {
	case "png", "":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	}
	return fmt.Errorf("unsupported image extension %q", ext)
}

// cleanExt lowercases an extension and strips any leading dots.
func cleanExt(ext string) string {
	return strings.TrimLeft(strings.ToLower(ext), ".")
}

// rgbaCopy redraws any image into a fresh RGBA buffer anchored at the origin.
func rgbaCopy(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// flattenOpaque drops the alpha channel, keeping the color values unchanged.
func flattenOpaque(img image.Image) *image.RGBA {
	out := rgbaCopy(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
