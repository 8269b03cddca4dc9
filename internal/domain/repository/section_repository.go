package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSectionNotFound is a domain-specific error returned when a section is not found.
var ErrSectionNotFound = errors.New("section not found")

// SectionRepository defines the standard operations for document-section persistence.
type SectionRepository interface {
	// Create persists a new section entity and fills in the generated ID and timestamps.
	Create(ctx context.Context, section *entity.DocumentSection) error

	// FindByID retrieves a single section by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentSection, error)

	// FindByProject retrieves every section of the given project. The result
	// carries whatever order the store returns; callers sort by OrderIndex
	// explicitly when layout matters.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.DocumentSection, error)

	// Update overwrites the stored section with the given entity, including
	// its full refinement history.
	Update(ctx context.Context, section *entity.DocumentSection) error

	// DeleteByProject removes every section belonging to the given project.
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
