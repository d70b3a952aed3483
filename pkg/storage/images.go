package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrNotAnImage is returned when an uploaded payload does not sniff as an
// image format.
var ErrNotAnImage = fmt.Errorf("payload is not a valid image")

// ImageStore writes uploaded movie posters to a local media directory.
// Files are publicly served under the /media/ route.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if dir == "" {
		dir = "media/"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// SaveMovieImage sniffs the payload, rejects non-images, and stores the file
// under a fresh name derived from the movie id. It returns the relative
// path persisted on the movie record.
func (s *ImageStore) SaveMovieImage(movieID uuid.UUID, payload io.Reader) (string, error) {
	raw, err := io.ReadAll(payload)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	mtype := mimetype.Detect(raw)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotAnImage
	}

	name := fmt.Sprintf("movie_%s_%s%s", movieID.String(), uuid.NewString()[:8], mtype.Extension())
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return name, nil
}

// Remove deletes a previously stored image. Missing files are not an error;
// the record may point at an image that was cleaned up manually.
func (s *ImageStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
