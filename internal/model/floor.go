package model

import (
	"time"

	"github.com/google/uuid"
)

// Floor is one level of the hotel under renovation. FloorNumber is a short
// code ("1", "G", "5E"); DisplayName is the human label shown on screens.
type Floor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FloorNumber string    `gorm:"not null;index"`
	DisplayName string    `gorm:"not null"`
	CreatedAt   time.Time

	Rooms []Room `gorm:"foreignKey:FloorID;constraint:OnDelete:CASCADE"`
}
