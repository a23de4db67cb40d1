package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"jobhunt-backend/internal/shared/storage/object"
	"jobhunt-backend/internal/shared/util"
)

// Store implements ObjectStore using a single local directory.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the sanitized name, overwriting any
// previous object with the same name.
func (s *Store) Save(ctx context.Context, name string, r io.Reader) (int64, string, error) {
	sanitizedName, err := util.SanitizeFileName(name)
	if err != nil {
		return 0, "", fmt.Errorf("sanitize file name: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, "", err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return 0, "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, sanitizedName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return 0, "", fmt.Errorf("read sniff: %w", readErr)
	}

	mimeType := http.DetectContentType(sniff[:n])

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return 0, "", fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, "", fmt.Errorf("write body: %w", err)
	}
	size += written

	return size, mimeType, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, object.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// List returns the stored object names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored object by name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return object.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Store) resolve(name string) (string, error) {
	clean := filepath.Clean(name)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, os.PathSeparator) {
		return "", fmt.Errorf("invalid object name")
	}
	return filepath.Join(s.baseDir, clean), nil
}
