package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tessvane/patchboard/pkg/observability"
)

// Store is the interface for document storage backends.
type Store interface {
	// Save writes a document, assigning an ID when it has none and
	// stamping UpdatedAt.
	Save(ctx context.Context, d *Document) error

	// Load retrieves a document by ID.
	// Returns ErrNotFound if no document has that ID.
	Load(ctx context.Context, id uuid.UUID) (*Document, error)

	// List returns all stored documents, most recently updated first.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document.
	// Returns ErrNotFound if no document has that ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DefaultDir returns the default directory for stored patches:
// $XDG_DATA_HOME/patchboard/patches, falling back to
// ~/.local/share/patchboard/patches.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "patchboard", "patches"), nil
}

// FileStore is a file-based document store.
// Documents are stored as one JSON file per patch in a data directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based document store.
// If baseDir is empty, [DefaultDir] is used. The directory is created
// when missing.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) docPath(id uuid.UUID) string {
	return filepath.Join(s.baseDir, id.String()+".json")
}

func (s *FileStore) Save(ctx context.Context, d *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	data, err := MarshalDocument(d)
	if err != nil {
		observability.Store().OnSave(ctx, d.ID.String(), 0, time.Since(start), err)
		return fmt.Errorf("marshal document: %w", err)
	}

	err = os.WriteFile(s.docPath(d.ID), data, 0644)
	observability.Store().OnSave(ctx, d.ID.String(), len(data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, id uuid.UUID) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Now()
	d, err := ReadDocumentFile(s.docPath(id))
	observability.Store().OnLoad(ctx, id.String(), time.Since(start), err)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *FileStore) List(ctx context.Context) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read document dir: %w", err)
	}

	docs := make([]*Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		d, err := ReadDocumentFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			// Foreign or corrupt files never block the listing.
			continue
		}
		docs = append(docs, d)
	}

	slices.SortFunc(docs, func(a, b *Document) int {
		if a.UpdatedAt.After(b.UpdatedAt) {
			return -1
		}
		if b.UpdatedAt.After(a.UpdatedAt) {
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return docs, nil
}

func (s *FileStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.docPath(id))
	observability.Store().OnDelete(ctx, id.String(), err)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove document file: %w", err)
	}
	return nil
}

// FindByName returns the most recently updated document with the given
// name. Returns ErrNotFound if no document matches.
func (s *FileStore) FindByName(ctx context.Context, name string) (*Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("document %q: %w", name, ErrNotFound)
}

// Path returns the base directory for document files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
