package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a named object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for a flat collection of named binary
// objects. Names are stable identifiers; saving an existing name overwrites.
type ObjectStore interface {
	Save(ctx context.Context, name string, r io.Reader) (sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
