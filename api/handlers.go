package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prasetyowira/qrbooth/constant"
	"github.com/prasetyowira/qrbooth/infrastructure/metadata"
	appLogger "github.com/prasetyowira/qrbooth/infrastructure/logger"
)

// MetadataReader exposes the read side of the picture metadata store
type MetadataReader interface {
	Lookup(picturePath string) (map[string]string, error)
}

// Handler contains dependencies for the API handlers
type Handler struct {
	outputDir string
	store     MetadataReader
}

// MetadataResponse is the response for picture metadata lookups
type MetadataResponse struct {
	Picture  string            `json:"picture"`
	Metadata map[string]string `json:"metadata"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewHandler creates a new API handler. store may be nil when no metadata
// database is configured.
func NewHandler(outputDir string, store MetadataReader) *Handler {
	return &Handler{
		outputDir: outputDir,
		store:     store,
	}
}

// cleanName validates a file name from the URL, rejecting path traversal
func cleanName(name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", false
	}
	return name, true
}

// Picture serves a captured picture from the output directory
func (h *Handler) Picture(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r)
}

// QRCode serves a saved QR image from the output directory
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, ok := cleanName(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file name")
		return
	}

	path := filepath.Join(h.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		appLogger.CtxWarn(ctx, constant.ErrPictureNotFound, appLogger.LoggerInfo{
			ContextFunction: constant.CtxAPI,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIPictureNotFound,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataPath: path,
			},
		})
		writeError(w, http.StatusNotFound, constant.ErrPictureNotFound)
		return
	}

	http.ServeFile(w, r, path)
}

// PictureMetadata returns the metadata recorded for a picture
func (h *Handler) PictureMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, ok := cleanName(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid file name")
		return
	}
	if h.store == nil {
		writeError(w, http.StatusNotFound, constant.ErrMetadataNotFound)
		return
	}

	path, err := filepath.Abs(filepath.Join(h.outputDir, name))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	values, err := h.store.Lookup(path)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			writeError(w, http.StatusNotFound, constant.ErrMetadataNotFound)
			return
		}
		appLogger.CtxError(ctx, "Metadata lookup failed", appLogger.LoggerInfo{
			ContextFunction: constant.CtxAPI,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIMetadataLookup,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataPicture: path,
			},
		})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MetadataResponse{
		Picture:  path,
		Metadata: values,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  status,
	})
}
