package resumes

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"jobhunt-backend/internal/shared/storage/object"
	"jobhunt-backend/internal/shared/telemetry"
)

// ErrInvalidInput is returned for uploads that are not usable resumes.
var ErrInvalidInput = errors.New("invalid resume upload")

// Resume describes one stored resume file.
type Resume struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
}

// Service stores resumes in a flat object store keyed by file name.
// Uploading under an existing name replaces the previous file.
type Service struct {
	Store object.ObjectStore
}

func NewService(store object.ObjectStore) *Service {
	return &Service{Store: store}
}

// Upload validates the file name and writes the resume.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Resume, error) {
	name := strings.TrimSpace(fileName)
	if name == "" {
		return Resume{}, ErrInvalidInput
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return Resume{}, ErrInvalidInput
	}

	size, mimeType, err := s.Store.Save(ctx, name, r)
	if err != nil {
		return Resume{}, err
	}
	telemetry.Info("resume.uploaded", map[string]any{
		"name":       name,
		"size_bytes": size,
	})
	return Resume{Name: name, SizeBytes: size, MimeType: mimeType}, nil
}

// List returns stored resume names in lexical order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.Store.List(ctx)
}

// Open returns a reader over a stored resume.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.Store.Open(ctx, name)
}

// Delete removes a stored resume.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.Store.Delete(ctx, name); err != nil {
		return err
	}
	telemetry.Info("resume.deleted", map[string]any{"name": name})
	return nil
}
