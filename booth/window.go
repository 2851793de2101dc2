package booth

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/prasetyowira/qrbooth/plugin"
)

// Window is a screen surface backed by an in-memory RGBA frame. The simulator
// draws booth screens into it and dumps them as PNG files.
type Window struct {
	frame *image.RGBA
}

// NewWindow creates a window of the given size filled with black
func NewWindow(width, height int) *Window {
	w := &Window{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	w.Fill(color.Black)
	return w
}

// Rect returns the window bounds
func (w *Window) Rect() image.Rectangle {
	return w.frame.Bounds()
}

// Surface returns the drawable surface of the window
func (w *Window) Surface() plugin.Surface {
	return w
}

// Blit draws an image with its top-left corner at the given point
func (w *Window) Blit(img image.Image, at image.Point) {
	b := img.Bounds()
	dst := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(w.frame, dst, img, b.Min, draw.Over)
}

// Fill paints the whole window with one color
func (w *Window) Fill(c color.Color) {
	draw.Draw(w.frame, w.frame.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Frame exposes the current pixel buffer
func (w *Window) Frame() *image.RGBA {
	return w.frame
}

// WritePNG dumps the current frame to a PNG file
func (w *Window) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, w.frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
