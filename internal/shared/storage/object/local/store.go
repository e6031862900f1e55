package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cardrequest-backend/internal/shared/storage/object"
	"cardrequest-backend/internal/shared/util"
)

// Store implements ObjectStore using the local filesystem.
type Store struct {
	baseDir string
	now     object.Clock
}

// New creates the upload directory if missing and returns a store rooted at it.
func New(baseDir string, now object.Clock) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("upload dir is empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", baseDir, err)
	}
	if now == nil {
		now = time.Now
	}
	return &Store{baseDir: baseDir, now: now}, nil
}

// Save writes the reader to disk and returns the path relative to the working directory.
func (s *Store) Save(ctx context.Context, prefix string, fileName string, r io.Reader) (string, int64, string, error) {
	finalName, err := util.StampedName(prefix, fileName, s.now())
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %v", object.ErrInvalidName, err)
	}

	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	fullPath := filepath.Join(s.baseDir, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, "", fmt.Errorf("open file: %w", err)
	}

	size, mimeType, err := writeSniffed(f, r)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return "", 0, "", err
	}

	return filepath.ToSlash(fullPath), size, mimeType, nil
}

// writeSniffed copies r into w and detects the content type from the first 512 bytes.
func writeSniffed(w io.Writer, r io.Reader) (int64, string, error) {
	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return 0, "", fmt.Errorf("read sniff: %w", readErr)
	}

	mimeType := http.DetectContentType(sniff[:n])

	size := int64(0)
	if n > 0 {
		if _, err := w.Write(sniff[:n]); err != nil {
			return 0, "", fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(w, r)
	if err != nil {
		return 0, "", fmt.Errorf("write body: %w", err)
	}
	return size + written, mimeType, nil
}

// Open opens a stored document for reading. storageKey is the path returned by Save.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(filepath.FromSlash(storageKey))
	base := filepath.Clean(s.baseDir)
	rel, err := filepath.Rel(base, clean)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: storage key outside upload dir", object.ErrInvalidName)
	}
	f, err := os.Open(clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, object.ErrNotFound
	}
	return f, err
}

var _ object.ObjectStore = (*Store)(nil)
