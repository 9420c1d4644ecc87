package service

import (
	"context"
	"errors"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistService owns the needed-item requests and the fulfillment toggle.
// Fulfilling a request reconciles it into real inventory: the matching item
// (found by case-insensitive item_type, created if absent) grows by the
// requested quantity on both counters, and an in_room assignment is ensured
// for the room. Un-fulfilling reverses the synthesis. Each direction is one
// transaction — the checklist and the inventory never disagree halfway.
type ChecklistService interface {
	Create(ctx context.Context, req dto.CreateNeededItemRequest) (*dto.NeededItemResponse, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]dto.NeededItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetFulfilled(ctx context.Context, id uuid.UUID, fulfilled bool) (*dto.NeededItemResponse, error)
}

type checklistService struct {
	needed      repository.NeededItemRepository
	items       repository.ItemRepository
	assignments repository.AssignmentRepository
	rooms       repository.RoomRepository
}

func NewChecklistService(
	needed repository.NeededItemRepository,
	items repository.ItemRepository,
	assignments repository.AssignmentRepository,
	rooms repository.RoomRepository,
) ChecklistService {
	return &checklistService{needed: needed, items: items, assignments: assignments, rooms: rooms}
}

func (s *checklistService) Create(ctx context.Context, req dto.CreateNeededItemRequest) (*dto.NeededItemResponse, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperr.Validation("room_id is not a valid id")
	}
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, notFoundOr(err, "room not found")
	}

	n := &model.NeededItem{
		RoomID:      roomID,
		ItemType:    req.ItemType,
		Quantity:    req.Quantity,
		Description: req.Description,
		Notes:       req.Notes,
		Fulfilled:   false,
	}
	if err := s.needed.Create(ctx, n); err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	return neededToResponse(n), nil
}

func (s *checklistService) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]dto.NeededItemResponse, error) {
	items, err := s.needed.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	out := make([]dto.NeededItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *neededToResponse(&items[i]))
	}
	return out, nil
}

func (s *checklistService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.needed.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "needed item not found")
	}
	if err := s.needed.Delete(ctx, id); err != nil {
		return apperr.Transient("storage unavailable, please retry", err)
	}
	return nil
}

func (s *checklistService) SetFulfilled(ctx context.Context, id uuid.UUID, fulfilled bool) (*dto.NeededItemResponse, error) {
	n, err := s.needed.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "needed item not found")
	}
	if n.Fulfilled == fulfilled {
		return neededToResponse(n), nil
	}

	var txErr error
	if fulfilled {
		txErr = runTx(ctx, s.needed.DB(), func(tx *gorm.DB) error { return s.fulfill(tx, n) })
	} else {
		txErr = runTx(ctx, s.needed.DB(), func(tx *gorm.DB) error { return s.unfulfill(tx, n) })
	}
	if txErr != nil {
		return nil, txErr
	}
	n.Fulfilled = fulfilled
	return neededToResponse(n), nil
}

// fulfill reconciles a pending request into inventory: the stock either
// arrived outside the normal assign flow or was bought ad hoc, so the
// synthesized assignment starts at in_room — it is already on site.
func (s *checklistService) fulfill(tx *gorm.DB, n *model.NeededItem) error {
	item, err := s.items.FindByTypeTx(tx, n.ItemType)
	switch {
	case err == nil:
		if err := s.items.AdjustBothTx(tx, item.ID, n.Quantity); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &model.Item{
			ItemType:         n.ItemType,
			Description:      n.Description,
			QuantityTotal:    n.Quantity,
			QuantityAssigned: n.Quantity,
		}
		if err := s.items.CreateTx(tx, item); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
	default:
		return apperr.Transient("storage unavailable, please retry", err)
	}

	if _, err := s.assignments.FindByItemAndRoomTx(tx, item.ID, n.RoomID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Transient("storage unavailable, please retry", err)
		}
		assignment := &model.ItemAssignment{
			ItemID: item.ID,
			RoomID: n.RoomID,
			Status: model.StatusInRoom,
		}
		if err := s.assignments.CreateTx(tx, assignment); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
	}

	if err := s.needed.SetFulfilledTx(tx, n.ID, true); err != nil {
		return apperr.Transient("storage unavailable, please retry", err)
	}
	return nil
}

// unfulfill reverses the synthesis. When no item matches the (free-text)
// item_type any more — renamed or deleted since fulfillment — only the flag
// flips; that degenerate case is accepted, not an error.
func (s *checklistService) unfulfill(tx *gorm.DB, n *model.NeededItem) error {
	item, err := s.items.FindByTypeTx(tx, n.ItemType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Transient("storage unavailable, please retry", err)
		}
	} else {
		if a, err := s.assignments.FindByItemAndRoomTx(tx, item.ID, n.RoomID); err == nil {
			if err := s.assignments.DeleteTx(tx, a.ID); err != nil {
				return apperr.Transient("storage unavailable, please retry", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Transient("storage unavailable, please retry", err)
		}

		// Never below zero — the item may have shrunk since fulfillment.
		newAssigned := item.QuantityAssigned - n.Quantity
		if newAssigned < 0 {
			newAssigned = 0
		}
		if err := s.items.SetAssignedTx(tx, item.ID, newAssigned); err != nil {
			return apperr.Transient("storage unavailable, please retry", err)
		}
	}

	if err := s.needed.SetFulfilledTx(tx, n.ID, false); err != nil {
		return apperr.Transient("storage unavailable, please retry", err)
	}
	return nil
}

func neededToResponse(n *model.NeededItem) *dto.NeededItemResponse {
	return &dto.NeededItemResponse{
		ID:          n.ID.String(),
		RoomID:      n.RoomID.String(),
		ItemType:    n.ItemType,
		Quantity:    n.Quantity,
		Description: n.Description,
		Notes:       n.Notes,
		Fulfilled:   n.Fulfilled,
		RequestedAt: n.RequestedAt.Format(timeFormat),
	}
}
