package booth

import (
	"github.com/google/uuid"
	"github.com/prasetyowira/qrbooth/plugin"
)

// Session is the booth's per-run context handed to every plugin hook. The
// plugin's state slot is attached by composition.
type Session struct {
	ID string

	picture  string
	captures int
	prevURL  string
	previous bool
	meta     plugin.MetadataStore
	qr       plugin.State
}

// NewSession creates a fresh session. meta may be nil when no metadata store
// is configured.
func NewSession(meta plugin.MetadataStore) *Session {
	return &Session{
		ID:   uuid.New().String(),
		meta: meta,
	}
}

// BeginCapture records a new captured picture and bumps the capture counter
func (s *Session) BeginCapture(picturePath string) {
	s.picture = picturePath
	s.captures++
	s.previous = true
}

// SetPreviousURL records the published URL of the latest picture
func (s *Session) SetPreviousURL(url string) {
	s.prevURL = url
}

// ClearPrevious drops the previous-capture flag, hiding the QR on wait screens
func (s *Session) ClearPrevious() {
	s.previous = false
}

func (s *Session) PictureFilename() string    { return s.picture }
func (s *Session) Count() int                 { return s.captures }
func (s *Session) PreviousPictureURL() string { return s.prevURL }
func (s *Session) HasPreviousPicture() bool   { return s.previous }

func (s *Session) Metadata() plugin.MetadataStore { return s.meta }

func (s *Session) QR() *plugin.State { return &s.qr }
