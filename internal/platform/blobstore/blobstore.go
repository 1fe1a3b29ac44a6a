// Package blobstore opens FHIR documents by location. A location is a local
// path, "-" for stdin, or an s3:// URL naming an object in an S3-compatible
// store. An in-memory source backs tests.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrNotFound          = errors.New("document not found")
	ErrUnsupportedScheme = errors.New("unsupported location scheme")
	ErrTooLarge          = errors.New("document exceeds maximum allowed size")
	ErrInvalidLocation   = errors.New("invalid document location")
)

// DefaultMaxSize is the document size limit used when none is configured
// (64 MB).
const DefaultMaxSize = 64 * 1024 * 1024

// Stdin is the location naming standard input.
const Stdin = "-"

// ---------------------------------------------------------------------------
// Source interface
// ---------------------------------------------------------------------------

// Source opens documents by location.
type Source interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// ReadAll opens location and reads it whole. Documents over maxSize bytes
// fail with ErrTooLarge; maxSize <= 0 means DefaultMaxSize.
func ReadAll(ctx context.Context, src Source, location string, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	rc, err := src.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, location, maxSize)
	}
	return data, nil
}

// ---------------------------------------------------------------------------
// Local files
// ---------------------------------------------------------------------------

// FileSource reads local files. The location "-" reads Stdin, or os.Stdin
// when Stdin is nil. A file:// prefix is accepted and stripped.
type FileSource struct {
	Stdin io.Reader
}

func (s FileSource) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if location == Stdin {
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.NopCloser(in), nil
	}
	path := strings.TrimPrefix(location, "file://")
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidLocation)
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// In-memory implementation
// ---------------------------------------------------------------------------

// MemorySource is a thread-safe, in-memory Source for tests.
type MemorySource struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemorySource returns a ready-to-use MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{docs: make(map[string][]byte)}
}

// Put stores a copy of data under location, replacing any previous document.
func (s *MemorySource) Put(location string, data []byte) {
	s.mu.Lock()
	s.docs[location] = bytes.Clone(data)
	s.mu.Unlock()
}

// Locations lists the stored locations in sorted order.
func (s *MemorySource) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.docs))
	for loc := range s.docs {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

func (s *MemorySource) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	data, ok := s.docs[location]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ---------------------------------------------------------------------------
// Router
// ---------------------------------------------------------------------------

// Router dispatches a location to the Source registered for its scheme.
// Locations without a scheme, and file:// locations, go to the local
// source.
type Router struct {
	local   Source
	schemes map[string]Source
}

// NewRouter returns a Router that sends scheme-less locations to local.
func NewRouter(local Source) *Router {
	return &Router{local: local, schemes: make(map[string]Source)}
}

// Handle registers src for locations of the form scheme://...
func (r *Router) Handle(scheme string, src Source) {
	r.schemes[strings.ToLower(scheme)] = src
}

func (r *Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	scheme, _, ok := strings.Cut(location, "://")
	if !ok || strings.EqualFold(scheme, "file") {
		return r.local.Open(ctx, location)
	}
	src, ok := r.schemes[strings.ToLower(scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	return src.Open(ctx, location)
}
