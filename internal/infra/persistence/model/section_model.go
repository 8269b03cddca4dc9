package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RefinementRecord is the jsonb shape of one refinement history entry.
// It mirrors the domain record so the persistence layer stays decoupled
// from the entity package.
type RefinementRecord struct {
	Original    string `json:"original"`
	Instruction string `json:"instruction"`
	Refined     string `json:"refined"`
}

// SectionModel mirrors the 'document_sections' table. The refinement history
// lives in a single jsonb column and is always read and written whole.
type SectionModel struct {
	ID                uuid.UUID                                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID         uuid.UUID                                `gorm:"type:uuid;not null;index"`
	Heading           string                                   `gorm:"type:varchar(255);not null"`
	Content           string                                   `gorm:"type:text"`
	OrderIndex        int                                      `gorm:"not null;default:0"`
	RefinementHistory datatypes.JSONType[[]RefinementRecord]   `gorm:"type:jsonb"`
	UserNotes         *string                                  `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SectionModel) TableName() string {
	return "document_sections"
}
