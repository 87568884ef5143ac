// Package storage provides one byte-level read/write API over two
// physically different substrates: the local filesystem and a remote
// object store. Reads are memoized by the bounded caches; read-path
// faults degrade to nil results rather than aborting the caller.
package storage

import (
	"image"
	"strings"

	"event-portal-backend/internal/cache"
	"event-portal-backend/internal/config"
	"event-portal-backend/internal/logger"
)

// staticPrefix always resolves against the local filesystem, so bundled
// assets work regardless of the configured backend.
const staticPrefix = "static/"

// Store is the file storage fronting the configured backend with the
// raw-bytes and decoded-image cache domains. Process-wide; constructed
// once at startup.
type Store struct {
	backend Backend
	static  *LocalBackend
	files   *cache.Cache[[]byte]
	images  *cache.Cache[image.Image]
	log     *logger.Logger
}

// New selects the backend from configuration and wires the cache
// domains. An unknown backend is a fatal configuration error.
func New(cfg *config.Config) (*Store, error) {
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return newStore(backend), nil
}

func newStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		static:  &LocalBackend{},
		files:   cache.New[[]byte](),
		images:  cache.New[image.Image](),
		log:     logger.New(),
	}
}

func (s *Store) backendFor(path string) Backend {
	if strings.HasPrefix(path, staticPrefix) {
		return s.static
	}
	return s.backend
}

// ReadFile returns the file bytes, served from cache within the TTL.
// A failed read is logged and degrades to nil; the failure itself is
// not cached, so the next call retries the backend.
func (s *Store) ReadFile(path string) []byte {
	content, ok := s.files.GetOrFill(path, func() ([]byte, bool) {
		content, err := s.backendFor(path).Read(path)
		if err != nil {
			s.log.WithError(err).WithField("path", path).Error("file read failed")
			return nil, false
		}
		return content, true
	})
	if !ok {
		return nil
	}
	return content
}

// ReadText returns the file contents decoded as text.
func (s *Store) ReadText(path string) (string, bool) {
	content := s.ReadFile(path)
	if content == nil {
		return "", false
	}
	return string(content), true
}

// ReadImage returns the decoded image with EXIF orientation applied,
// served from the image cache within the TTL. A missing or unreadable
// source yields a 1x1 placeholder instead of failing.
func (s *Store) ReadImage(path string) image.Image {
	img, _ := s.images.GetOrFill(path, func() (image.Image, bool) {
		content := s.ReadFile(path)
		if content == nil {
			s.log.WithField("path", path).Warn("cannot load image, using placeholder")
			return placeholderImage(), true
		}
		if img := decodeImage(content); img != nil {
			return img, true
		}
		s.log.WithField("path", path).Warn("cannot decode image, using placeholder")
		return placeholderImage(), true
	})
	return img
}

// WriteFile stores the content and invalidates the path in the content
// caches. Write failures surface to the caller and are not retried.
func (s *Store) WriteFile(path string, content []byte) error {
	if err := s.backendFor(path).Write(path, content); err != nil {
		return err
	}
	s.files.Delete(path)
	s.images.Delete(path)
	return nil
}

// Flush drops all cache domains at once. Invoked after bulk external
// changes such as a roster refresh or a backup restoration.
func (s *Store) Flush() {
	cache.FlushAll()
}
