package placement

import (
	"image"
	"strings"
)

// Locations lists the window anchors a QR code can be pinned to. A location is a
// primary anchor, optionally followed by a sub-anchor after a hyphen.
var Locations = []string{
	"topleft", "topright", "bottomleft", "bottomright",
	"midtop-left", "midtop-right", "midbottom-left", "midbottom-right",
}

// DefaultMargin is the gap in pixels between the QR code and its side text.
const DefaultMargin = 10

// Valid reports whether location is a member of Locations.
func Valid(location string) bool {
	for _, l := range Locations {
		if l == location {
			return true
		}
	}
	return false
}

// split separates a location into its primary anchor and sub-anchor.
func split(location string) (string, string) {
	if i := strings.Index(location, "-"); i >= 0 {
		return location[:i], location[i+1:]
	}
	return location, ""
}

// anchorPoint returns the window point named by the primary anchor.
func anchorPoint(win image.Rectangle, anchor string) image.Point {
	midX := win.Min.X + win.Dx()/2
	switch anchor {
	case "topleft":
		return win.Min
	case "topright":
		return image.Pt(win.Max.X, win.Min.Y)
	case "bottomleft":
		return image.Pt(win.Min.X, win.Max.Y)
	case "bottomright":
		return win.Max
	case "midtop":
		return image.Pt(midX, win.Min.Y)
	case "midbottom":
		return image.Pt(midX, win.Max.Y)
	}
	return win.Min
}

// anchored returns the rectangle of the given size whose named anchor sits at pos.
func anchored(size image.Point, anchor string, pos image.Point) image.Rectangle {
	var min image.Point
	switch anchor {
	case "topleft":
		min = pos
	case "topright":
		min = image.Pt(pos.X-size.X, pos.Y)
	case "bottomleft":
		min = image.Pt(pos.X, pos.Y-size.Y)
	case "bottomright":
		min = image.Pt(pos.X-size.X, pos.Y-size.Y)
	case "midtop":
		min = image.Pt(pos.X-size.X/2, pos.Y)
	case "midbottom":
		min = image.Pt(pos.X-size.X/2, pos.Y-size.Y)
	default:
		min = pos
	}
	return image.Rectangle{Min: min, Max: min.Add(size)}
}

// Place computes the rectangle at which an image of the given size is drawn on the
// window. The offset moves the anchor point inward: down from "top" anchors and up
// otherwise, right from "left" anchors and left otherwise. "mid" anchors are further
// shifted sideways by half the image width depending on the sub-anchor.
func Place(win image.Rectangle, size image.Point, location string, offset image.Point) image.Rectangle {
	anchor, sub := split(location)
	pos := anchorPoint(win, anchor)

	if strings.Contains(anchor, "top") {
		pos.Y += offset.Y
	} else {
		pos.Y -= offset.Y
	}
	if strings.Contains(anchor, "left") {
		pos.X += offset.X
	} else {
		pos.X -= offset.X
	}
	if strings.Contains(anchor, "mid") {
		if strings.Contains(sub, "left") {
			pos.X -= size.X / 2
		} else {
			pos.X += size.X/2 + 2*offset.X
		}
	}

	return anchored(size, anchor, pos)
}

// PlaceCaption computes the rectangle for the side text next to a placed QR code.
// The rectangle is one sixth of the window width, as tall as the code rectangle and
// aligned to its top. It falls to the right of the code for "left" anchors and to the
// left otherwise; "mid" sub-anchors invert the side.
func PlaceCaption(win, code image.Rectangle, location string, margin int) image.Rectangle {
	anchor, sub := split(location)
	w := win.Dx() / 6
	h := code.Dy()

	var left int
	if strings.Contains(anchor, "left") {
		left = code.Max.X + margin
	} else {
		left = code.Min.X - margin - w
	}
	if strings.Contains(anchor, "mid") {
		if strings.Contains(sub, "left") {
			left = code.Min.X - margin - w
		} else {
			left = code.Max.X + margin
		}
	}

	return image.Rect(left, code.Min.Y, left+w, code.Min.Y+h)
}
