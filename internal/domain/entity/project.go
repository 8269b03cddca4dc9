// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a user-owned container for one generated document or slide deck.
// It exclusively owns its sections: deleting a project deletes every section,
// so no orphaned sections can exist.
type Project struct {
	ID          uuid.UUID          `json:"id"`          // The Global Unique Identifier (GUID) for the project.
	UserID      uuid.UUID          `json:"user_id"`     // The ID of the owning user.
	Title       string             `json:"title"`       // Human-readable title, also used as the export filename stem.
	Description string             `json:"description"` // Free text used as the generation "topic" for every section.
	DocType     DocType            `json:"doc_type"`    // Output-format tag, fixed at creation.
	Sections    []*DocumentSection `json:"sections"`    // Ordered child sections (read-side traversal only).
	CreatedAt   time.Time          `json:"created_at"`  // Set once at creation; never mutated afterwards.
	UpdatedAt   time.Time          `json:"updated_at"`  // Timestamp of the last modification.
}
