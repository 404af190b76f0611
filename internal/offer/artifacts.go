package offer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrArtifactNotFound is returned when no PDF has been rendered yet.
var ErrArtifactNotFound = errors.New("pdf artifact not found")

// ArtifactStore keeps rendered offer PDFs on disk, keyed by offer ID.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates the storage directory if needed.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("offer: artifact dir: %w", err)
	}
	return &ArtifactStore{dir: dir}, nil
}

// Save writes the PDF atomically.
func (s *ArtifactStore) Save(offerID string, pdf []byte) error {
	tmp := s.path(offerID) + ".tmp"
	if err := os.WriteFile(tmp, pdf, 0o644); err != nil {
		return fmt.Errorf("offer: write artifact: %w", err)
	}
	if err := os.Rename(tmp, s.path(offerID)); err != nil {
		return fmt.Errorf("offer: publish artifact: %w", err)
	}
	return nil
}

// Load reads a previously rendered PDF.
func (s *ArtifactStore) Load(offerID string) ([]byte, error) {
	pdf, err := os.ReadFile(s.path(offerID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrArtifactNotFound
	}
	return pdf, err
}

// Delete removes the artifact for an offer, if any.
func (s *ArtifactStore) Delete(offerID string) error {
	err := os.Remove(s.path(offerID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *ArtifactStore) path(offerID string) string {
	return filepath.Join(s.dir, offerID+".pdf")
}
