package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cardrequest-backend/internal/shared/metrics"
	"cardrequest-backend/internal/shared/storage/object"
)

// Service stores uploaded documents.
type Service struct {
	Store object.ObjectStore
}

// Save checks category and extension, then writes r to the store under the category prefix.
func (s *Service) Save(ctx context.Context, categoryName, fileName string, r io.Reader) (Document, error) {
	if s.Store == nil {
		return Document{}, errors.New("document store not configured")
	}
	cat, ok := LookupCategory(strings.TrimSpace(categoryName))
	if !ok {
		return Document{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, categoryName)
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if !cat.Allows(fileName) {
		return Document{}, fmt.Errorf("%w: %s accepts %s", ErrInvalidInput, cat.Name, strings.Join(cat.Extensions, ", "))
	}

	path, size, mimeType, err := s.Store.Save(ctx, cat.Prefix, fileName, r)
	if err != nil {
		if errors.Is(err, object.ErrInvalidName) {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Document{}, err
	}
	metrics.IncDocumentStored(cat.Name)

	return Document{
		Category:  cat.Name,
		FileName:  fileName,
		Path:      path,
		MimeType:  mimeType,
		SizeBytes: size,
	}, nil
}

// Open reads back a stored document by the path Save returned. The download name is the stored file name.
func (s *Service) Open(ctx context.Context, storageKey string) (string, []byte, error) {
	if s.Store == nil {
		return "", nil, errors.New("document store not configured")
	}
	storageKey = strings.TrimSpace(storageKey)
	if storageKey == "" {
		return "", nil, fmt.Errorf("%w: path is required", ErrInvalidInput)
	}
	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		switch {
		case errors.Is(err, object.ErrNotFound):
			return "", nil, ErrNotFound
		case errors.Is(err, object.ErrInvalidName):
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return "", nil, err
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, fmt.Errorf("read document: %w", err)
	}
	return path.Base(storageKey), body, nil
}
