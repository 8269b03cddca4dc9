// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. It owns zero or more projects and carries the
// opaque credential hash produced by the password hasher.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email          string    // The user's unique login identifier.
	HashedPassword string    // Opaque bcrypt hash; never exposed through the delivery layer.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}
