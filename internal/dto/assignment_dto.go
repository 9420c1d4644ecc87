package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AssignItemRequest places one unit of an item into a room. The room is
// resolved by (floor, number) and created on the fly when absent.
type AssignItemRequest struct {
	ItemID     string `json:"item_id"     validate:"required,uuid"`
	FloorID    string `json:"floor_id"    validate:"required,uuid"`
	RoomNumber string `json:"room_number" validate:"required,min=1,max=20"`
}

type EditAssignmentRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// AdvanceStatusRequest asks for exactly the next state in the delivery
// sequence. Anything else is rejected.
type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=building built delivering in_room"`
}

type TransferRequest struct {
	FloorID    string  `json:"floor_id"    validate:"required,uuid"`
	RoomNumber string  `json:"room_number" validate:"required,min=1,max=20"`
	Reason     *string `json:"reason"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AssignmentResponse struct {
	ID         string  `json:"id"`
	ItemID     string  `json:"item_id"`
	ItemType   string  `json:"item_type"`
	RoomID     string  `json:"room_id"`
	RoomNumber string  `json:"room_number,omitempty"`
	Status     string  `json:"status"`
	AssignedAt string  `json:"assigned_at"`
}

type TransferResponse struct {
	ID             string  `json:"id"`
	AssignmentID   string  `json:"assignment_id"`
	FromRoomID     string  `json:"from_room_id"`
	FromRoomNumber string  `json:"from_room_number,omitempty"`
	ToRoomID       string  `json:"to_room_id"`
	ToRoomNumber   string  `json:"to_room_number,omitempty"`
	Reason         *string `json:"reason"`
	TransferredAt  string  `json:"transferred_at"`
}
