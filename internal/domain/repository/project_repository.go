package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is a domain-specific error returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// Create persists a new project entity and fills in the generated ID and timestamps.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a single project by its unique ID, with its sections preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByOwner retrieves every project owned by the given user, with sections preloaded.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)

	// Delete removes the project row. Sections are deleted separately within
	// the same transaction so the cascade is explicit and observable.
	Delete(ctx context.Context, id uuid.UUID) error
}
