package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateNeededItemRequest struct {
	RoomID      string  `json:"room_id"     validate:"required,uuid"`
	ItemType    string  `json:"item_type"   validate:"required,min=1,max=120"`
	Quantity    int     `json:"quantity"    validate:"required,min=1"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

// SetFulfilledRequest toggles the checklist flag. Marking fulfilled
// reconciles the request into real inventory; marking unfulfilled reverses it.
type SetFulfilledRequest struct {
	Fulfilled *bool `json:"fulfilled" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type NeededItemResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	ItemType    string  `json:"item_type"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	Fulfilled   bool    `json:"fulfilled"`
	RequestedAt string  `json:"requested_at"`
}
