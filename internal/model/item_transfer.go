package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemTransfer is an immutable audit record of an assignment moving between
// rooms. Rows are only ever inserted — never updated or deleted.
type ItemTransfer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssignmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FromRoomID    uuid.UUID `gorm:"type:uuid;not null"`
	ToRoomID      uuid.UUID `gorm:"type:uuid;not null"`
	Reason        *string
	TransferredAt time.Time `gorm:"autoCreateTime"`

	FromRoom *Room `gorm:"foreignKey:FromRoomID"`
	ToRoom   *Room `gorm:"foreignKey:ToRoomID"`
}
