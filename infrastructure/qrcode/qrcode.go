package qrcode

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"
)

// Pixels drawn per QR module, matching the size the booth screens were tuned for.
const moduleSize = 3

// ErrNilImage is returned when a conversion is attempted on a missing image.
var ErrNilImage = errors.New("nil image")

// Generator builds QR code images for display and saving
type Generator struct {
	level qrcode.RecoveryLevel
}

// NewGenerator creates a new QR code generator
func NewGenerator() *Generator {
	return &Generator{
		// Low tolerance keeps the symbol small enough for screen corners
		level: qrcode.Low,
	}
}

// Generate encodes text into a QR code image using the given colors.
func (g *Generator) Generate(text string, foreground, background color.Color) (image.Image, error) {
	qr, err := qrcode.New(text, g.level)
	if err != nil {
		return nil, err
	}

	qr.ForegroundColor = foreground
	qr.BackgroundColor = background

	// A negative size renders each module at that many pixels
	return qr.Image(-moduleSize), nil
}

// ToRGBA converts any image into the RGBA form the window surfaces expect.
// Images already backed by RGBA pixels are passed through; everything else is
// redrawn pixel by pixel.
func ToRGBA(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out, nil
}
