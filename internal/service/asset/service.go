package asset

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path"
	"regexp"
	"strings"
)

// MaxPayloadBytes is the ceiling for an encoded image payload.
const MaxPayloadBytes = 5 << 20

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/data/images/"

// Service errors
var (
	ErrPayloadTooLarge    = errors.New("image payload too large")
	ErrMalformedPayload   = errors.New("malformed image payload")
	ErrInvalidFilename    = fmt.Errorf("%w: invalid filename", ErrMalformedPayload)
	ErrStorageUnavailable = errors.New("image storage unavailable")
	ErrNotFound           = errors.New("image not found")
)

var filenamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,254}$`)

// Backend persists raw image bytes by name.
type Backend interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
}

// Decoder turns the encoded part of a payload into raw bytes.
type Decoder func(encoded string) ([]byte, error)

// Option configures a Store.
type Option func(*Store)

// WithDecoder replaces the base64 decoder.
func WithDecoder(d Decoder) Option {
	return func(s *Store) {
		s.decode = d
	}
}

// Store validates inlined image payloads and writes them to a Backend.
type Store struct {
	backend  Backend
	decode   Decoder
	maxBytes int
}

// NewStore creates a Store writing to backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		decode:   base64.StdEncoding.DecodeString,
		maxBytes: MaxPayloadBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Image is a stored image with its content type.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// Save decodes imageData and stores it under filename, returning the public
// reference path. An existing image with the same name is overwritten.
//
// The size ceiling is enforced on the encoded payload before any decoding.
func (s *Store) Save(ctx context.Context, imageData, filename string) (string, error) {
	if len(imageData) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadTooLarge, len(imageData), s.maxBytes)
	}
	if !ValidFilename(filename) {
		return "", ErrInvalidFilename
	}
	_, encoded, err := ParseEnvelope(imageData)
	if err != nil {
		return "", err
	}
	data, err := s.decode(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := s.backend.Put(ctx, filename, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return URLPrefix + filename, nil
}

// Open returns a previously stored image.
func (s *Store) Open(ctx context.Context, name string) (*Image, error) {
	if !ValidFilename(name) {
		return nil, ErrNotFound
	}
	data, err := s.backend.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &Image{Name: name, ContentType: ct, Data: data}, nil
}

// ValidFilename reports whether name is a bare file name safe to store.
func ValidFilename(name string) bool {
	return filenamePattern.MatchString(name) && !strings.Contains(name, "..")
}

// ParseEnvelope splits a "[data:]<mime>;base64,<data>" payload into its MIME
// type and encoded data. Only image MIME types are accepted.
func ParseEnvelope(payload string) (mimeType, encoded string, err error) {
	rest := strings.TrimPrefix(payload, "data:")
	header, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("%w: missing data separator", ErrMalformedPayload)
	}
	mimeType, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", "", fmt.Errorf("%w: payload is not base64 encoded", ErrMalformedPayload)
	}
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", "", fmt.Errorf("%w: unsupported media type %q", ErrMalformedPayload, mediaType)
	}
	if encoded == "" {
		return "", "", fmt.Errorf("%w: empty image data", ErrMalformedPayload)
	}
	return mediaType, encoded, nil
}
