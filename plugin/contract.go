package plugin

import (
	"image"
	"image/color"
)

// Config is the host's option registry. The plugin declares its options during
// Configure and reads them back in the lifecycle hooks.
type Config interface {
	AddOption(section, name string, def interface{}, description string, hints ...interface{})
	GetString(section, name string) string
	GetBool(section, name string) bool
	GetColor(section, name string) color.RGBA
	GetPoint(section, name string) image.Point
}

// MetadataStore records values against a picture's absolute path.
type MetadataStore interface {
	Attach(picturePath, key, value string) error
}

// App is the host's per-session context.
type App interface {
	// PictureFilename returns the path of the most recent captured picture,
	// empty when no capture happened yet.
	PictureFilename() string
	// Count returns the running capture counter.
	Count() int
	// PreviousPictureURL returns the URL of the previously published picture,
	// empty when unknown.
	PreviousPictureURL() string
	// HasPreviousPicture reports whether a previous capture is still available.
	HasPreviousPicture() bool
	// Metadata returns the host's per-picture metadata store, nil when the host
	// has none.
	Metadata() MetadataStore
	// QR returns the plugin's state slot on the session. Never nil.
	QR() *State
}

// Surface is a drawable target supporting blitting at an origin point.
type Surface interface {
	Blit(img image.Image, at image.Point)
}

// Window exposes the host window's bounds and drawing surface.
type Window interface {
	Rect() image.Rectangle
	Surface() Surface
}

// TextSurface pairs a rendered line of text with its placement rectangle.
type TextSurface struct {
	Image image.Image
	Rect  image.Rectangle
}

// TextLayout is the host's text-layout utility: it wraps text into line surfaces
// positioned inside bounds with the given alignment.
type TextLayout func(text string, col color.RGBA, bounds image.Rectangle, align string) []TextSurface

// Generator produces a QR code image from text and two colors.
type Generator interface {
	Generate(text string, foreground, background color.Color) (image.Image, error)
}

// State is the plugin's slot on the host session. It is overwritten on every
// processing cycle and read by the display hooks until the next cycle.
type State struct {
	// Image is the latest generated QR code in window-surface form.
	Image *image.RGBA
	// WaitRect is the rectangle the code was placed at on the wait screen.
	WaitRect image.Rectangle
	// Captions holds the side text line surfaces placed next to the code.
	Captions []TextSurface
}
