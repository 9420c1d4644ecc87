package model

import (
	"time"

	"github.com/google/uuid"
)

// Room belongs to exactly one floor. RoomNumber is unique within the floor —
// the composite unique index makes the find-or-create flow race-safe: a
// concurrent duplicate insert fails on the constraint and the caller
// re-fetches instead of erroring out.
type Room struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FloorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_rooms_floor_room"`
	RoomNumber string    `gorm:"not null;uniqueIndex:uni_rooms_floor_room"`
	CreatedAt  time.Time

	Floor       *Floor           `gorm:"foreignKey:FloorID"`
	Assignments []ItemAssignment `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	NeededItems []NeededItem     `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
