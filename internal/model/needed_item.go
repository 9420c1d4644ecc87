package model

import (
	"time"

	"github.com/google/uuid"
)

// NeededItem is a per-room request for stock not yet accounted for in
// inventory. ItemType is free text matched against Item.ItemType by
// case-insensitive comparison — deliberately not a foreign key, so staff can
// request things before a catalog entry exists. Renaming an item afterwards
// breaks the linkage; that is a known limitation carried from the data model.
type NeededItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType    string    `gorm:"not null"`
	Quantity    int       `gorm:"not null;default:1"`
	Description *string
	Notes       *string
	Fulfilled   bool      `gorm:"not null;default:false"`
	RequestedAt time.Time `gorm:"autoCreateTime"`

	Room *Room `gorm:"foreignKey:RoomID"`
}
