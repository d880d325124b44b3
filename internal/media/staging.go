// Package media exposes database-resident blobs as static files.
//
// The staging directory is a derived, disposable cache: filenames are
// content-addressed (prefix plus a digest of the bytes), so materializing the
// same blob twice is idempotent and two requests can never clobber each
// other's files. Nothing on the read path ever deletes; cleanup is left to an
// out-of-band reaper that only touches files older than a grace period.
package media

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const tmpPrefix = ".tmp-"

type Store struct {
	dir       string
	urlPrefix string
	grace     time.Duration
	log       zerolog.Logger
}

func NewStore(dir, urlPrefix string, grace time.Duration, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		grace:     grace,
		log:       logger,
	}, nil
}

// Materialize writes the blob under a content-addressed name and returns its
// public URL. Empty blobs yield an empty URL and no file. If the file already
// exists its mtime is refreshed so the reaper keeps hot entries alive.
func (s *Store) Materialize(prefix string, data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	sum := sha256.Sum256(data)
	name := fmt.Sprintf("%s-%x.%s", prefix, sum[:8], ext)
	path := filepath.Join(s.dir, name)

	now := time.Now()
	if err := os.Chtimes(path, now, now); err == nil {
		return s.urlPrefix + "/" + name, nil
	}

	// Write to a uuid-named temp file first so a partially written blob is
	// never visible under its final name.
	tmp := filepath.Join(s.dir, tmpPrefix+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return s.urlPrefix + "/" + name, nil
}

// FileServer serves staged files. Missing names (including already-reaped
// ones) get a plain 404; temp files and subpaths are never exposed.
func (s *Store) FileServer() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/\\") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.dir, name))
	})
}
