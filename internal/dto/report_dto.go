package dto

// ─── Completion / shortage report ────────────────────────────────────────────

type NeededLine struct {
	ItemType    string  `json:"item_type"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description,omitempty"`
	Fulfilled   bool    `json:"fulfilled"`
}

type AssignedLine struct {
	ItemType string `json:"item_type"`
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
}

type MissingLine struct {
	ItemType string `json:"item_type"`
	Quantity int    `json:"quantity"`
}

// RoomCompletionReport is one room's row in the completion report. A room is
// complete iff it has at least one needed item and every missing quantity is
// zero — missing quantities are computed against in_room assignments only.
type RoomCompletionReport struct {
	RoomID        string         `json:"room_id"`
	RoomNumber    string         `json:"room_number"`
	FloorDisplay  string         `json:"floor_display"`
	NeededItems   []NeededLine   `json:"needed_items"`
	AssignedItems []AssignedLine `json:"assigned_items"`
	MissingItems  []MissingLine  `json:"missing_items"`
	IsComplete    bool           `json:"is_complete"`
}

type CompletionReportResponse struct {
	TotalRooms      int                    `json:"total_rooms"`
	CompleteRooms   int                    `json:"complete_rooms"`
	IncompleteRooms int                    `json:"incomplete_rooms"`
	Rooms           []RoomCompletionReport `json:"rooms"`
}

// ShortageReportResponse lists only rooms with at least one non-zero missing
// quantity.
type ShortageReportResponse struct {
	Rooms []RoomCompletionReport `json:"rooms"`
}

// ─── Checklist progress ──────────────────────────────────────────────────────

// RoomChecklistProgress is the fulfilled/total counter shown per room on the
// checklist screen. Progress metadata only — completion is decided by missing
// quantities, not by this flag count.
type RoomChecklistProgress struct {
	RoomID       string `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	FloorID      string `json:"floor_id"`
	FloorDisplay string `json:"floor_display"`
	Fulfilled    int    `json:"fulfilled"`
	Total        int    `json:"total"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardResponse struct {
	TotalFloors      int            `json:"total_floors"`
	TotalRooms       int            `json:"total_rooms"`
	TotalUnits       int            `json:"total_units"` // sum of quantity_total
	AssignmentCounts map[string]int `json:"assignment_counts"`
}

// ─── Report email ────────────────────────────────────────────────────────────

type EmailReportRequest struct {
	To string `json:"to" validate:"required,email"`
}
