package storage

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/uploads/"

var (
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrTooLarge        = errors.New("file too large")
	ErrInvalidKey      = errors.New("invalid storage key")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ImageStore names, validates and stores uploaded images in a fiber.Storage.
type ImageStore struct {
	backend  fiber.Storage
	maxBytes int64
	now      func() time.Time
	suffix   func() int
}

func NewImageStore(backend fiber.Storage, maxBytes int64) *ImageStore {
	return &ImageStore{
		backend:  backend,
		maxBytes: maxBytes,
		now:      time.Now,
		suffix:   func() int { return rand.IntN(1_000_000_000) },
	}
}

func (s *ImageStore) MaxBytes() int64 {
	return s.maxBytes
}

func (s *ImageStore) Validate(contentType string, size int64) error {
	if _, ok := allowedTypes[strings.ToLower(contentType)]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size > s.maxBytes {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return nil
}

// Save stores data under a generated name and returns its public URL.
func (s *ImageStore) Save(prefix, originalName, contentType string, data []byte) (string, error) {
	if err := s.Validate(contentType, int64(len(data))); err != nil {
		return "", err
	}

	name := s.fileName(prefix, originalName, contentType)
	if err := s.backend.Set(name, data, 0); err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}

	return URLPrefix + name, nil
}

// Get returns nil data when nothing is stored under name.
func (s *ImageStore) Get(name string) ([]byte, error) {
	if !validKey(name) {
		return nil, ErrInvalidKey
	}
	return s.backend.Get(name)
}

// DeleteByURL removes the image a record pointed to. URLs outside URLPrefix are
// not managed here and are ignored. Deleting an absent file succeeds.
func (s *ImageStore) DeleteByURL(url string) (bool, error) {
	name, ok := KeyFromURL(url)
	if !ok {
		return false, nil
	}

	if err := s.backend.Delete(name); err != nil {
		return false, fmt.Errorf("delete %s: %w", name, err)
	}
	return true, nil
}

func (s *ImageStore) fileName(prefix, originalName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || ext == "." {
		ext = allowedTypes[strings.ToLower(contentType)]
	}

	return fmt.Sprintf("%s-%d-%d%s", prefix, s.now().UnixMilli(), s.suffix(), ext)
}

// KeyFromURL extracts the storage key from a public image URL.
func KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, URLPrefix) {
		return "", false
	}

	name := strings.TrimPrefix(url, URLPrefix)
	if !validKey(name) {
		return "", false
	}
	return name, true
}

func validKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		!strings.ContainsAny(key, `/\`) && filepath.Base(key) == key
}
