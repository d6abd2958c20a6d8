package catalog

import (
	"context"
	"io"
	"os"
)

// FileSource reads the catalog from a local path.
type FileSource struct {
	Path string
}

var _ Source = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

func (s *FileSource) Name() string { return s.Path }
