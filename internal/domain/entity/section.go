// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefinementRecord is one immutable entry of a section's refinement history.
// It captures a full snapshot transition, not a diff: replaying all records
// in order from an empty history reconstructs the content evolution exactly.
type RefinementRecord struct {
	Original    string `json:"original"`    // Section content immediately before this refinement.
	Instruction string `json:"instruction"` // Verbatim user-supplied directive.
	Refined     string `json:"refined"`     // Section content immediately after this refinement.
}

// DocumentSection is one heading + content unit within a project, generated
// once and independently refinable afterwards.
type DocumentSection struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the section.
	ProjectID uuid.UUID `json:"project_id"` // The ID of the owning project.
	Heading   string    `json:"heading"`    // Section title, also used as generation context.
	Content   string    `json:"content"`    // Current text; overwritten by each refinement.
	// OrderIndex is the position among sibling sections. Uniqueness is not
	// enforced by the store; callers sort by it explicitly before export.
	OrderIndex int `json:"order_index"`
	// RefinementHistory is append-only and monotonically growing. No entry is
	// ever removed or reordered.
	RefinementHistory []RefinementRecord `json:"refinement_history"`
	UserNotes         *string            `json:"user_notes,omitempty"` // Optional free text, never programmatically modified.
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
