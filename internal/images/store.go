// Package images stores expense photos on disk and derives thumbnails.
package images

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/snapspend/backend/internal/uuid"
)

// Thumbnails are bounded to fit into this square.
const thumbnailSize = 320

// Store writes and removes image artifacts in one directory. References
// handed out by the store are plain file names, never paths.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore returns a store writing to the given directory, creating it
// if needed.
func NewStore(dir string) (*Store, error) {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	return &Store{
		dir: dir,
		log: log.With().Str("component", "images").Logger(),
	}, nil
}

// Save writes the encoded image and derives a thumbnail from it.
//
// The thumbnail is best-effort: when deriving it fails, the full image
// reference is returned with an empty thumbnail reference and a warning
// is logged. Readers fall back to the full image in that case.
func (s *Store) Save(data []byte) (ref, thumbRef string, err error) {
	id := uuid.NewString()
	ref = id + ".jpg"

	err = os.WriteFile(s.Path(ref), data, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("writing image: %w", err)
	}

	thumbRef, err = s.saveThumbnail(id, data)
	if err != nil {
		s.log.Warn().Err(err).Str("image", ref).Msg("thumbnail could not be derived")
		return ref, "", nil
	}

	return ref, thumbRef, nil
}

func (s *Store) saveThumbnail(id string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	thumbRef := id + "_thumb.jpg"
	err = imaging.Save(thumb, s.Path(thumbRef))
	if err != nil {
		return "", fmt.Errorf("writing thumbnail: %w", err)
	}

	return thumbRef, nil
}

// Delete removes the given artifacts best-effort. Failures are logged
// and never returned: an orphaned file is acceptable, blocking the
// deletion of the expense record is not.
func (s *Store) Delete(refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}

		err := os.Remove(s.Path(ref))
		if err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("image", ref).Msg("image artifact could not be removed")
		}
	}
}

// Exists reports whether the artifact is present.
func (s *Store) Exists(ref string) bool {
	if ref == "" {
		return false
	}

	_, err := os.Stat(s.Path(ref))
	return err == nil
}

// Path returns the file path for a reference. The reference is reduced
// to its base name so that references can never escape the store
// directory.
func (s *Store) Path(ref string) string {
	return filepath.Join(s.dir, filepath.Base(strings.TrimSpace(ref)))
}
