package service

import (
	"context"
	"fmt"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
)

// ItemService manages stock intake and the item catalog.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	// Delete removes an item type. Rejected with a conflict while any unit is
	// still assigned to a room.
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &model.Item{
		ItemType:         req.ItemType,
		Description:      req.Description,
		QuantityTotal:    req.Quantity,
		QuantityAssigned: 0,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	return itemToResponse(item), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Transient("storage unavailable, please retry", err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *itemToResponse(&items[i]))
	}
	return out, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "item not found")
	}
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.QuantityTotal != nil {
		if *req.QuantityTotal < item.QuantityAssigned {
			return nil, apperr.Validation(fmt.Sprintf(
				"quantity_total cannot drop below the %d units already assigned", item.QuantityAssigned))
		}
		item.QuantityTotal = *req.QuantityTotal
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, notFoundOr(err, "item not found")
	}
	return itemToResponse(item), nil
}

func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "item not found")
	}
	if item.QuantityAssigned > 0 {
		return apperr.Conflict(fmt.Sprintf(
			"item %q still has %d assigned units, unassign them first", item.ItemType, item.QuantityAssigned))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "item not found")
	}
	return nil
}

func itemToResponse(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                i.ID.String(),
		ItemType:          i.ItemType,
		Description:       i.Description,
		QuantityTotal:     i.QuantityTotal,
		QuantityAssigned:  i.QuantityAssigned,
		QuantityRemaining: i.QuantityRemaining(),
	}
}
