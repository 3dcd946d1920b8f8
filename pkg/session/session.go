package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tessvane/patchboard/pkg/patch"
)

var (
	// ErrNotFound is returned by [Store] lookups when no document matches
	// the requested ID or name.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidDocument is returned by [ToPatch] and the read functions
	// when a decoded document violates the format's structure, such as a
	// wire that names a knob its node does not have.
	ErrInvalidDocument = errors.New("invalid document")
)

// Document is a named, persistable patch. The ID is the document's stable
// identity in a [Store]; the name is a mutable display label and needs no
// uniqueness.
type Document struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Patch     *patch.Patch
}

// NewDocument creates an empty named document with a fresh ID and an
// empty patch.
func NewDocument(name string) *Document {
	now := time.Now()
	return &Document{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Patch:     patch.New(),
	}
}

// DisplayName returns the document name, or a short form of the ID when
// the document is unnamed.
func (d *Document) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID.String()[:8]
}
