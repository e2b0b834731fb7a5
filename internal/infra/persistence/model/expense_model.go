package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel mirrors the 'expenses' table. OwnerID references users.id; the
// date column carries a calendar day with no time component.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(12,2);not null;check:amount >= 0"`
	Category    string    `gorm:"type:varchar(32);not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:varchar(256)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}
