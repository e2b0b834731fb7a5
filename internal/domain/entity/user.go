// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// The username doubles as the login identifier and is immutable after creation.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned by the store.
	Username     string    // The unique login name. Never changes after registration.
	PasswordHash string    // The bcrypt-hashed password. Opaque outside the hasher.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
