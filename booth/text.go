package booth

import (
	"image"
	"image/color"
	"strings"

	"github.com/prasetyowira/qrbooth/plugin"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LayoutText wraps text into lines fitting the bounds width and renders each
// line into its own surface, implementing the plugin's TextLayout contract.
// "top-left" stacks lines from the top of the bounds; everything else stacks
// from the bottom, left aligned.
func LayoutText(text string, col color.RGBA, bounds image.Rectangle, align string) []plugin.TextSurface {
	if text == "" || bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	lines := wrapLines(text, face, bounds.Dx())

	// Drop lines that would overflow the bounds
	maxLines := bounds.Dy() / lineHeight
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	surfaces := make([]plugin.TextSurface, 0, len(lines))
	for i, line := range lines {
		img := renderLine(line, col, face)
		var y int
		if align == "top-left" {
			y = bounds.Min.Y + i*lineHeight
		} else {
			y = bounds.Max.Y - (len(lines)-i)*lineHeight
		}
		rect := image.Rect(bounds.Min.X, y, bounds.Min.X+img.Bounds().Dx(), y+img.Bounds().Dy())
		surfaces = append(surfaces, plugin.TextSurface{Image: img, Rect: rect})
	}
	return surfaces
}

// wrapLines breaks text into lines no wider than maxWidth, honoring explicit
// line breaks.
func wrapLines(text string, face font.Face, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// renderLine draws one line of text into a tightly sized surface.
func renderLine(line string, col color.RGBA, face font.Face) *image.RGBA {
	width := font.MeasureString(face, line).Ceil()
	if width < 1 {
		width = 1
	}
	metrics := face.Metrics()
	img := image.NewRGBA(image.Rect(0, 0, width, metrics.Height.Ceil()))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(line)
	return img
}
