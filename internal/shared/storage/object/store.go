package object

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrInvalidName is returned by Save when the file name cannot be stored safely.
var ErrInvalidName = errors.New("invalid file name")

// ErrNotFound is returned by Open when nothing is stored under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore saves and retrieves uploaded documents.
// Save stores r under "<prefix><YYYYMMDDHHMMSS>_<fileName>" and returns the key to reference it by.
type ObjectStore interface {
	Save(ctx context.Context, prefix string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// Clock returns the timestamp embedded in stored names.
type Clock func() time.Time
