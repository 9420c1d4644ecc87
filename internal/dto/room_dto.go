package dto

// CreateRoomsRequest adds one or more rooms under a floor. Numbers that
// already exist on the floor are skipped, not treated as errors — this mirrors
// the bulk data-entry flow where a range is pasted in.
type CreateRoomsRequest struct {
	RoomNumbers []string `json:"room_numbers" validate:"required,min=1,dive,required,max=20"`
}

type UpdateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,min=1,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RoomResponse struct {
	ID         string `json:"id"`
	FloorID    string `json:"floor_id"`
	RoomNumber string `json:"room_number"`
}

type CreateRoomsResponse struct {
	Created []RoomResponse `json:"created"`
	Skipped []string       `json:"skipped"` // room numbers that already existed
}

// RoomDetailResponse is the full room view: every assignment currently in the
// room plus its needed-item checklist.
type RoomDetailResponse struct {
	RoomResponse
	FloorDisplay string               `json:"floor_display"`
	Assignments  []AssignmentResponse `json:"assignments"`
	NeededItems  []NeededItemResponse `json:"needed_items"`
}
