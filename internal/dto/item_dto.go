package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	ItemType    string  `json:"item_type"   validate:"required,min=1,max=120"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity"    validate:"required,min=1"`
}

// UpdateItemRequest edits the stock type. QuantityTotal may not drop below the
// number of units already assigned.
type UpdateItemRequest struct {
	ItemType      *string `json:"item_type"      validate:"omitempty,min=1,max=120"`
	Description   *string `json:"description"`
	QuantityTotal *int    `json:"quantity_total" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID                string  `json:"id"`
	ItemType          string  `json:"item_type"`
	Description       *string `json:"description"`
	QuantityTotal     int     `json:"quantity_total"`
	QuantityAssigned  int     `json:"quantity_assigned"`
	QuantityRemaining int     `json:"quantity_remaining"`
}
