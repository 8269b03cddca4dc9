// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// GenerateSectionInput defines the data required to generate a new section
// under a project. OrderIndex uniqueness is not enforced.
type GenerateSectionInput struct {
	Heading    string `json:"heading" validate:"required"`
	OrderIndex int    `json:"order_index"`
}

// SectionUsecase owns section generation and instruction-driven refinement.
type SectionUsecase interface {
	// GenerateSection builds a doc-type-specific prompt from the project's
	// description and the given heading, invokes the content generator once,
	// and persists the result as a new section with an empty history.
	GenerateSection(ctx context.Context, requesterID, projectID uuid.UUID, input *GenerateSectionInput) (*entity.DocumentSection, error)

	// RefineSection rewrites the section's current content under the given
	// instruction, appends exactly one RefinementRecord and overwrites the
	// content. Not idempotent: every call grows the history by one record.
	// Ownership of the owning project is checked against requesterID only
	// when enforcement is configured on.
	RefineSection(ctx context.Context, requesterID, sectionID uuid.UUID, instruction string) (*entity.DocumentSection, error)
}
