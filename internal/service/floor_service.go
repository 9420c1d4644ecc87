package service

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
)

// FloorService manages the floor list. Deleting a floor cascades to its rooms
// (and from there to assignments and needed items) via the FK constraints.
type FloorService interface {
	Create(ctx context.Context, req dto.CreateFloorRequest) (*dto.FloorResponse, error)
	List(ctx context.Context) ([]dto.FloorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateFloorRequest) (*dto.FloorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type floorService struct {
	repo repository.FloorRepository
}

func NewFloorService(repo repository.FloorRepository) FloorService {
	return &floorService{repo: repo}
}

func (s *floorService) Create(ctx context.Context, req dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	floor := &model.Floor{
		FloorNumber: req.FloorNumber,
		DisplayName: req.DisplayName,
	}
	if err := s.repo.Create(ctx, floor); err != nil {
		return nil, notFoundOr(err, "floor not found")
	}
	return floorToResponse(floor), nil
}

func (s *floorService) List(ctx context.Context) ([]dto.FloorResponse, error) {
	floors, err := s.repo.List(ctx)
	if err != nil {
		return nil, notFoundOr(err, "floors not found")
	}
	out := make([]dto.FloorResponse, 0, len(floors))
	for i := range floors {
		out = append(out, *floorToResponse(&floors[i]))
	}
	return out, nil
}

func (s *floorService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	floor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "floor not found")
	}
	if req.FloorNumber != nil {
		floor.FloorNumber = *req.FloorNumber
	}
	if req.DisplayName != nil {
		floor.DisplayName = *req.DisplayName
	}
	if err := s.repo.Update(ctx, floor); err != nil {
		return nil, notFoundOr(err, "floor not found")
	}
	return floorToResponse(floor), nil
}

func (s *floorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "floor not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "floor not found")
	}
	return nil
}

func floorToResponse(f *model.Floor) *dto.FloorResponse {
	return &dto.FloorResponse{
		ID:          f.ID.String(),
		FloorNumber: f.FloorNumber,
		DisplayName: f.DisplayName,
		RoomCount:   len(f.Rooms),
	}
}
