package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateFloorRequest struct {
	FloorNumber string `json:"floor_number" validate:"required,min=1,max=10"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=80"`
}

type UpdateFloorRequest struct {
	FloorNumber *string `json:"floor_number" validate:"omitempty,min=1,max=10"`
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=80"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FloorResponse struct {
	ID          string `json:"id"`
	FloorNumber string `json:"floor_number"`
	DisplayName string `json:"display_name"`
	RoomCount   int    `json:"room_count"`
}
