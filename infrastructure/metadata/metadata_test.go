package metadata

import (
	"path/filepath"
	"testing"

	"github.com/prasetyowira/qrbooth/constant"
	"github.com/stretchr/testify/assert"
)

// Helper function to create a test store in a temporary directory
func createTestStore(t *testing.T) *Store {
	store, err := NewStore(filepath.Join(t.TempDir(), "metadata.db"))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	// Act
	store := createTestStore(t)

	// Assert
	assert.NotNil(t, store)
	assert.NotNil(t, store.db)
}

func TestNewStore_InvalidPath(t *testing.T) {
	// Act - Try to create a store with an invalid path
	store, err := NewStore("/invalid/path/metadata.db")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_AttachAndLookup(t *testing.T) {
	// Arrange
	store := createTestStore(t)

	// Act
	err := store.Attach("/data/pictures/booth_0001.jpg", constant.MetaQRCodePath, "/data/pictures/booth_0001_qrcode.png")

	// Assert
	assert.NoError(t, err)

	values, err := store.Lookup("/data/pictures/booth_0001.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "/data/pictures/booth_0001_qrcode.png", values[constant.MetaQRCodePath])
}

func TestStore_AttachOverwrites(t *testing.T) {
	// Arrange
	store := createTestStore(t)
	picture := "/data/pictures/booth_0002.jpg"

	// Act - attach twice under the same key
	assert.NoError(t, store.Attach(picture, constant.MetaQRCodePath, "/old.png"))
	assert.NoError(t, store.Attach(picture, constant.MetaQRCodePath, "/new.png"))

	// Assert - the later value wins and only one entry exists
	values, err := store.Lookup(picture)
	assert.NoError(t, err)
	assert.Len(t, values, 1)
	assert.Equal(t, "/new.png", values[constant.MetaQRCodePath])
}

func TestStore_AttachEmptyPicturePath(t *testing.T) {
	// Arrange
	store := createTestStore(t)

	// Act
	err := store.Attach("", constant.MetaQRCodePath, "/qr.png")

	// Assert
	assert.Error(t, err)
}

func TestStore_LookupUnknownPicture(t *testing.T) {
	// Arrange
	store := createTestStore(t)

	// Act
	values, err := store.Lookup("/data/pictures/missing.jpg")

	// Assert
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, values)
}

func TestStore_MultipleKeys(t *testing.T) {
	// Arrange
	store := createTestStore(t)
	picture := "/data/pictures/booth_0003.jpg"

	// Act
	assert.NoError(t, store.Attach(picture, constant.MetaQRCodePath, "/qr.png"))
	assert.NoError(t, store.Attach(picture, "printed", "true"))

	// Assert
	values, err := store.Lookup(picture)
	assert.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, "/qr.png", values[constant.MetaQRCodePath])
	assert.Equal(t, "true", values["printed"])
}
