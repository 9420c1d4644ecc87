package service

import (
	"context"
	"fmt"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService is the assignment engine: it owns the link between item
// units and rooms, the quantity_assigned counter, the delivery status
// sequence, and room-to-room transfers. Every multi-write path runs inside a
// single transaction so the counter can never drift from the assignment rows.
type AssignmentService interface {
	Assign(ctx context.Context, req dto.AssignItemRequest) (*dto.AssignmentResponse, error)
	EditItem(ctx context.Context, id uuid.UUID, req dto.EditAssignmentRequest) (*dto.AssignmentResponse, error)
	Unassign(ctx context.Context, id uuid.UUID) error
	AdvanceStatus(ctx context.Context, id uuid.UUID, req dto.AdvanceStatusRequest) (*dto.AssignmentResponse, error)
	Transfer(ctx context.Context, id uuid.UUID, req dto.TransferRequest) (*dto.TransferResponse, error)
	ListTransfers(ctx context.Context, id uuid.UUID) ([]dto.TransferResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	items       repository.ItemRepository
	rooms       repository.RoomRepository
	floors      repository.FloorRepository
	transfers   repository.TransferRepository
}

func NewAssignmentService(
	assignments repository.AssignmentRepository,
	items repository.ItemRepository,
	rooms repository.RoomRepository,
	floors repository.FloorRepository,
	transfers repository.TransferRepository,
) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		items:       items,
		rooms:       rooms,
		floors:      floors,
		transfers:   transfers,
	}
}

// Assign places one unit of an item into the room identified by
// (floor, room number), creating the room on the fly when it does not exist.
// The capacity check runs inside the transaction so two concurrent assigns of
// the last unit cannot both pass.
func (s *assignmentService) Assign(ctx context.Context, req dto.AssignItemRequest) (*dto.AssignmentResponse, error) {
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apperr.Validation("item_id is not a valid id")
	}
	floorID, err := uuid.Parse(req.FloorID)
	if err != nil {
		return nil, apperr.Validation("floor_id is not a valid id")
	}
	if _, err := s.floors.FindByID(ctx, floorID); err != nil {
		return nil, notFoundOr(err, "floor not found")
	}

	var assignment model.ItemAssignment
	txErr := runTx(ctx, s.assignments.DB(), func(tx *gorm.DB) error {
		item, err := s.items.FindByIDTx(tx, itemID)
		if err != nil {
			return notFoundOr(err, "item not found")
		}
		if item.QuantityAssigned >= item.QuantityTotal {
			return apperr.Validation(fmt.Sprintf("all %d units of %q are already assigned", item.QuantityTotal, item.ItemType))
		}

		room, err := s.rooms.FindOrCreateTx(tx, floorID, req.RoomNumber)
		if err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}

		assignment = model.ItemAssignment{
			ItemID: item.ID,
			RoomID: room.ID,
			Status: model.StatusBuilding,
		}
		if err := s.assignments.CreateTx(tx, &assignment); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		if err := s.items.AdjustAssignedTx(tx, item.ID, +1); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		assignment.Item = item
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return assignmentToResponse(&assignment), nil
}

// EditItem repoints an assignment at a different item. No-op when the item is
// unchanged; otherwise the old item's counter goes down by one and the new
// item's goes up by one, all-or-nothing.
func (s *assignmentService) EditItem(ctx context.Context, id uuid.UUID, req dto.EditAssignmentRequest) (*dto.AssignmentResponse, error) {
	newItemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apperr.Validation("item_id is not a valid id")
	}

	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}
	if assignment.ItemID == newItemID {
		return assignmentToResponse(assignment), nil
	}

	txErr := runTx(ctx, s.assignments.DB(), func(tx *gorm.DB) error {
		newItem, err := s.items.FindByIDTx(tx, newItemID)
		if err != nil {
			return notFoundOr(err, "item not found")
		}
		if newItem.QuantityAssigned >= newItem.QuantityTotal {
			return apperr.Validation(fmt.Sprintf("all %d units of %q are already assigned", newItem.QuantityTotal, newItem.ItemType))
		}

		if err := s.assignments.UpdateItemTx(tx, id, newItemID); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		if err := s.items.AdjustAssignedTx(tx, assignment.ItemID, -1); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		if err := s.items.AdjustAssignedTx(tx, newItemID, +1); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		assignment.ItemID = newItemID
		assignment.Item = newItem
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return assignmentToResponse(assignment), nil
}

// Unassign removes the assignment and releases the unit back to the item.
func (s *assignmentService) Unassign(ctx context.Context, id uuid.UUID) error {
	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "assignment not found")
	}
	return runTx(ctx, s.assignments.DB(), func(tx *gorm.DB) error {
		if err := s.assignments.DeleteTx(tx, id); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		if err := s.items.AdjustAssignedTx(tx, assignment.ItemID, -1); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		return nil
	})
}

// AdvanceStatus moves the assignment one step along
// building → built → delivering → in_room. The request must name exactly the
// next state; in_room is terminal.
func (s *assignmentService) AdvanceStatus(ctx context.Context, id uuid.UUID, req dto.AdvanceStatusRequest) (*dto.AssignmentResponse, error) {
	requested := model.AssignmentStatus(req.Status)
	if !requested.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unknown status %q", req.Status))
	}

	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}

	next, ok := assignment.Status.Next()
	if !ok {
		return nil, apperr.Validation(fmt.Sprintf("%s is a final status", assignment.Status))
	}
	if requested != next {
		return nil, apperr.Validation(fmt.Sprintf("cannot go from %s to %s, next step is %s", assignment.Status, requested, next))
	}

	if err := s.assignments.UpdateStatus(ctx, id, next); err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	assignment.Status = next
	return assignmentToResponse(assignment), nil
}

// Transfer moves the assignment to another room and records the move in the
// audit trail. The transfer row and the room change commit together or not at
// all; delivery status is untouched.
func (s *assignmentService) Transfer(ctx context.Context, id uuid.UUID, req dto.TransferRequest) (*dto.TransferResponse, error) {
	floorID, err := uuid.Parse(req.FloorID)
	if err != nil {
		return nil, apperr.Validation("floor_id is not a valid id")
	}
	if _, err := s.floors.FindByID(ctx, floorID); err != nil {
		return nil, notFoundOr(err, "floor not found")
	}

	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}

	var transfer model.ItemTransfer
	txErr := runTx(ctx, s.assignments.DB(), func(tx *gorm.DB) error {
		room, err := s.rooms.FindOrCreateTx(tx, floorID, req.RoomNumber)
		if err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}

		transfer = model.ItemTransfer{
			AssignmentID: assignment.ID,
			FromRoomID:   assignment.RoomID,
			ToRoomID:     room.ID,
			Reason:       req.Reason,
		}
		if err := s.transfers.CreateTx(tx, &transfer); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		if err := s.assignments.UpdateRoomTx(tx, id, room.ID); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return transferToResponse(&transfer), nil
}

func (s *assignmentService) ListTransfers(ctx context.Context, id uuid.UUID) ([]dto.TransferResponse, error) {
	if _, err := s.assignments.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "assignment not found")
	}
	transfers, err := s.transfers.ListByAssignment(ctx, id)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		out = append(out, *transferToResponse(&transfers[i]))
	}
	return out, nil
}

func assignmentToResponse(a *model.ItemAssignment) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:         a.ID.String(),
		ItemID:     a.ItemID.String(),
		RoomID:     a.RoomID.String(),
		Status:     string(a.Status),
		AssignedAt: a.AssignedAt.Format(timeFormat),
	}
	if a.Item != nil {
		resp.ItemType = a.Item.ItemType
	}
	if a.Room != nil {
		resp.RoomNumber = a.Room.RoomNumber
	}
	return resp
}

func transferToResponse(t *model.ItemTransfer) *dto.TransferResponse {
	resp := &dto.TransferResponse{
		ID:            t.ID.String(),
		AssignmentID:  t.AssignmentID.String(),
		FromRoomID:    t.FromRoomID.String(),
		ToRoomID:      t.ToRoomID.String(),
		Reason:        t.Reason,
		TransferredAt: t.TransferredAt.Format(timeFormat),
	}
	if t.FromRoom != nil {
		resp.FromRoomNumber = t.FromRoom.RoomNumber
	}
	if t.ToRoom != nil {
		resp.ToRoomNumber = t.ToRoom.RoomNumber
	}
	return resp
}
