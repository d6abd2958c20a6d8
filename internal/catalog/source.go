package catalog

import (
	"bytes"
	"context"
	"io"
)

// Source supplies the raw catalog document. Implementations exist for local
// files, HTTP endpoints, Azure blobs and SQLite databases; the catalog is
// read once at startup and sources are never written to.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name identifies the source in errors and logs, and its extension
	// decides the decode format.
	Name() string
}

// MemorySource serves a document from process memory.
type MemorySource struct {
	name string
	data []byte
}

var _ Source = (*MemorySource)(nil)

func NewMemorySource(name string, data []byte) *MemorySource {
	return &MemorySource{name: name, data: data}
}

func (s *MemorySource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *MemorySource) Name() string { return s.name }
