package booth

import (
	"image"
	"image/color"
	"testing"

	"github.com/prasetyowira/qrbooth/constant"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_DefaultsAndOverrides(t *testing.T) {
	// Arrange
	r := NewRegistry()
	r.AddOption(constant.SectionQRCode, constant.OptWaitLocation, "bottomleft", "Location on wait screen")
	r.AddOption(constant.SectionQRCode, constant.OptSave, false, "Save the generated QR image")
	r.AddOption(constant.SectionQRCode, constant.OptOffset, image.Pt(20, 40), "Offset from location")

	// Act
	r.Set(constant.SectionQRCode, constant.OptSave, true)

	// Assert
	assert.Equal(t, "bottomleft", r.GetString(constant.SectionQRCode, constant.OptWaitLocation))
	assert.True(t, r.GetBool(constant.SectionQRCode, constant.OptSave))
	assert.Equal(t, image.Pt(20, 40), r.GetPoint(constant.SectionQRCode, constant.OptOffset))
}

func TestRegistry_UndeclaredOptions(t *testing.T) {
	// Arrange
	r := NewRegistry()

	// Act / Assert - zero values, never panics
	assert.Equal(t, "", r.GetString("QRCODE", "missing"))
	assert.False(t, r.GetBool("QRCODE", "missing"))
	assert.Equal(t, color.RGBA{}, r.GetColor("QRCODE", "missing"))
	assert.Equal(t, image.Point{}, r.GetPoint("QRCODE", "missing"))
}

func TestRegistry_SetDeclaresUnknownOption(t *testing.T) {
	// Arrange
	r := NewRegistry()

	// Act
	r.Set(constant.SectionGeneral, constant.OptDirectory, "/data/pictures")

	// Assert
	assert.Equal(t, "/data/pictures", r.GetString(constant.SectionGeneral, constant.OptDirectory))
}

func TestSession_CaptureLifecycle(t *testing.T) {
	// Arrange
	s := NewSession(nil)

	// Assert - fresh session
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.HasPreviousPicture())
	assert.NotNil(t, s.QR())

	// Act
	s.BeginCapture("/data/pictures/booth_0001.png")
	s.SetPreviousURL("http://localhost:8080/pictures/booth_0001.png")

	// Assert
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.HasPreviousPicture())
	assert.Equal(t, "/data/pictures/booth_0001.png", s.PictureFilename())
	assert.Equal(t, "http://localhost:8080/pictures/booth_0001.png", s.PreviousPictureURL())

	// Act
	s.ClearPrevious()

	// Assert
	assert.False(t, s.HasPreviousPicture())
}

func TestSession_QRSlotIsStable(t *testing.T) {
	// Arrange
	s := NewSession(nil)

	// Act
	s.QR().Image = image.NewRGBA(image.Rect(0, 0, 4, 4))

	// Assert - the same slot is returned on every call
	assert.NotNil(t, s.QR().Image)
}

func TestWindow_Blit(t *testing.T) {
	// Arrange
	w := NewWindow(100, 50)
	red := image.NewUniform(color.RGBA{R: 255, A: 255})
	patch := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			patch.Set(x, y, red.C)
		}
	}

	// Act
	w.Blit(patch, image.Pt(20, 30))

	// Assert
	assert.Equal(t, color.RGBA{R: 255, A: 255}, w.Frame().RGBAAt(25, 35))
	assert.Equal(t, color.RGBA{A: 255}, w.Frame().RGBAAt(5, 5))
}

func TestWindow_Fill(t *testing.T) {
	// Arrange
	w := NewWindow(10, 10)

	// Act
	w.Fill(color.RGBA{G: 255, A: 255})

	// Assert
	assert.Equal(t, color.RGBA{G: 255, A: 255}, w.Frame().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, w.Frame().RGBAAt(9, 9))
}

func TestLayoutText_WrapsIntoBounds(t *testing.T) {
	// Arrange
	bounds := image.Rect(100, 200, 180, 300)

	// Act
	surfaces := LayoutText("scan the code to download your picture", color.RGBA{A: 255}, bounds, "bottom-left")

	// Assert - several left-aligned lines, each inside the bounds width
	assert.Greater(t, len(surfaces), 1)
	for _, ts := range surfaces {
		assert.Equal(t, bounds.Min.X, ts.Rect.Min.X)
		assert.LessOrEqual(t, ts.Rect.Dx(), bounds.Dx())
	}

	// Lines are ordered top to bottom and the last one touches the bottom edge
	for i := 1; i < len(surfaces); i++ {
		assert.Greater(t, surfaces[i].Rect.Min.Y, surfaces[i-1].Rect.Min.Y)
	}
	assert.Equal(t, bounds.Max.Y, surfaces[len(surfaces)-1].Rect.Max.Y)
}

func TestLayoutText_TopAlignment(t *testing.T) {
	// Arrange
	bounds := image.Rect(0, 0, 200, 100)

	// Act
	surfaces := LayoutText("hello", color.RGBA{A: 255}, bounds, "top-left")

	// Assert
	assert.Len(t, surfaces, 1)
	assert.Equal(t, bounds.Min.Y, surfaces[0].Rect.Min.Y)
}

func TestLayoutText_EmptyText(t *testing.T) {
	// Act
	surfaces := LayoutText("", color.RGBA{A: 255}, image.Rect(0, 0, 100, 100), "bottom-left")

	// Assert
	assert.Nil(t, surfaces)
}

func TestLayoutText_RendersInk(t *testing.T) {
	// Arrange
	bounds := image.Rect(0, 0, 200, 100)

	// Act
	surfaces := LayoutText("X", color.RGBA{R: 255, A: 255}, bounds, "bottom-left")

	// Assert - at least one pixel carries the requested color
	assert.Len(t, surfaces, 1)
	img := surfaces[0].Image.(*image.RGBA)
	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 && img.Pix[i+3] == 255 {
			found = true
			break
		}
	}
	assert.True(t, found)
}
