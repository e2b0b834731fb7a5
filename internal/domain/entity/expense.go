// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for expense dates. Expenses carry
// a calendar day with no time component.
const DateLayout = "2006-01-02"

// Expense is a single categorized spending record. Every expense is owned by
// exactly one user and is only visible and mutable through that identity.
type Expense struct {
	ID          uuid.UUID // The unique identifier for the expense, assigned by the store.
	OwnerID     uuid.UUID // The user this expense belongs to. Immutable.
	Amount      float64   // Non-negative spending amount.
	Category    string    // Non-empty short label, e.g. "food".
	Date        time.Time // Calendar date of the expense, truncated to midnight UTC.
	Description string    // Optional free-form note.
	CreatedAt   time.Time // Timestamp of when this record was created.
}
