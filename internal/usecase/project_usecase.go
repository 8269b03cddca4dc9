// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProjectInput defines the data required to create a new project.
// DocType is trusted as given; unrecognized tags fall back to document-mode
// prompting and the slide export path rather than being rejected.
type CreateProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	DocType     string `json:"doc_type" validate:"required"`
}

// --- Output DTOs ---

// ExportOutput carries the rendered document and the download metadata
// derived from the project's doc type.
type ExportOutput struct {
	Content     []byte
	Filename    string
	ContentType string
}

// ProjectUsecase owns the project lifecycle: creation, traversal, cascading
// deletion and export. requesterID identifies the authenticated caller;
// ownership enforcement against it is configuration-gated.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, ownerID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error)
	GetProject(ctx context.Context, requesterID, projectID uuid.UUID) (*entity.Project, error)
	DeleteProject(ctx context.Context, requesterID, projectID uuid.UUID) error
	ExportProject(ctx context.Context, requesterID, projectID uuid.UUID) (*ExportOutput, error)
}
