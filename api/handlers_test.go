package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prasetyowira/qrbooth/constant"
	"github.com/prasetyowira/qrbooth/infrastructure/metadata"
	"github.com/stretchr/testify/assert"
)

// stubMetadata implements MetadataReader for testing
type stubMetadata struct {
	values map[string]map[string]string
}

func (s *stubMetadata) Lookup(picturePath string) (map[string]string, error) {
	if v, ok := s.values[picturePath]; ok {
		return v, nil
	}
	return nil, metadata.ErrNotFound
}

// newTestRouter builds a router serving from a temporary output directory
func newTestRouter(t *testing.T, store MetadataReader) (*Router, string) {
	dir := t.TempDir()
	router := NewRouter(NewHandler(dir, store))
	router.SetupRoutes()
	return router, dir
}

func TestHealthcheck(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, nil)
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constant.MsgHealthy, w.Body.String())
}

func TestPicture_Served(t *testing.T) {
	// Arrange
	router, dir := newTestRouter(t, nil)
	content := []byte("not really a png")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "booth_0001.png"), content, 0o644))

	req := httptest.NewRequest("GET", "/pictures/booth_0001.png", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
}

func TestPicture_NotFound(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, nil)
	req := httptest.NewRequest("GET", "/pictures/missing.png", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQRCode_Served(t *testing.T) {
	// Arrange
	router, dir := newTestRouter(t, nil)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "booth_0001_qrcode.png"), []byte("qr"), 0o644))

	req := httptest.NewRequest("GET", "/qrcodes/booth_0001_qrcode.png", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"booth_0001.png", true},
		{"foo_qrcode.jpg", true},
		{"", false},
		{".hidden", false},
		{"..", false},
		{"a/b.png", false},
		{"../etc/passwd", false},
	}

	for _, tt := range tests {
		// Act
		_, ok := cleanName(tt.name)

		// Assert
		assert.Equal(t, tt.ok, ok, "name %q", tt.name)
	}
}

func TestPictureMetadata_Found(t *testing.T) {
	// Arrange
	store := &stubMetadata{values: map[string]map[string]string{}}
	router, dir := newTestRouter(t, store)
	picture, err := filepath.Abs(filepath.Join(dir, "booth_0001.png"))
	assert.NoError(t, err)
	store.values[picture] = map[string]string{
		constant.MetaQRCodePath: filepath.Join(dir, "booth_0001_qrcode.png"),
	}

	req := httptest.NewRequest("GET", "/api/pictures/booth_0001.png/metadata", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var resp MetadataResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, picture, resp.Picture)
	assert.Contains(t, resp.Metadata, constant.MetaQRCodePath)
}

func TestPictureMetadata_NotFound(t *testing.T) {
	// Arrange
	store := &stubMetadata{values: map[string]map[string]string{}}
	router, _ := newTestRouter(t, store)
	req := httptest.NewRequest("GET", "/api/pictures/unknown.png/metadata", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPictureMetadata_NoStore(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, nil)
	req := httptest.NewRequest("GET", "/api/pictures/booth_0001.png/metadata", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}
