package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatus is the delivery progress of one assigned unit. The
// sequence is strictly linear: building → built → delivering → in_room.
type AssignmentStatus string

const (
	StatusBuilding   AssignmentStatus = "building"
	StatusBuilt      AssignmentStatus = "built"
	StatusDelivering AssignmentStatus = "delivering"
	StatusInRoom     AssignmentStatus = "in_room" // terminal
)

// Next returns the only status reachable from s. ok is false when s is
// terminal or unknown — there are no reverse transitions and no skips.
func (s AssignmentStatus) Next() (AssignmentStatus, bool) {
	switch s {
	case StatusBuilding:
		return StatusBuilt, true
	case StatusBuilt:
		return StatusDelivering, true
	case StatusDelivering:
		return StatusInRoom, true
	default:
		return "", false
	}
}

// Valid reports whether s is one of the four known statuses.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusBuilding, StatusBuilt, StatusDelivering, StatusInRoom:
		return true
	}
	return false
}

// ItemAssignment links one unit of an Item to a Room. Creating one increments
// the item's QuantityAssigned; deleting one (or repointing it to another item)
// decrements it. RoomID is mutated on transfer — the move history lives in
// item_transfers.
type ItemAssignment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	RoomID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status     AssignmentStatus `gorm:"not null;default:'building'"`
	AssignedAt time.Time        `gorm:"autoCreateTime"`
	UpdatedAt  time.Time

	Item      *Item          `gorm:"foreignKey:ItemID"`
	Room      *Room          `gorm:"foreignKey:RoomID"`
	Transfers []ItemTransfer `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}
