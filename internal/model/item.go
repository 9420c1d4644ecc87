package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stock type ("Headboard Type 1", "Chair"), not an individual unit.
// QuantityTotal counts units acquired; QuantityAssigned counts units currently
// linked to rooms. Invariant: 0 <= QuantityAssigned <= QuantityTotal — writes
// that would break it are rejected before commit, and a CHECK constraint on
// the table backstops the application-level guard.
type Item struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemType         string    `gorm:"not null;index"`
	Description      *string
	QuantityTotal    int `gorm:"not null;default:0"`
	QuantityAssigned int `gorm:"not null;default:0"`
	CreatedAt        time.Time

	Assignments []ItemAssignment `gorm:"foreignKey:ItemID"`
}

// QuantityRemaining is the number of units still available for assignment.
func (i *Item) QuantityRemaining() int { return i.QuantityTotal - i.QuantityAssigned }
