package service

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
)

// RoomService handles room data entry and the room detail view.
type RoomService interface {
	// CreateRooms adds the given numbers under a floor, skipping ones that
	// already exist. Bulk paste of a number range is the common entry path.
	CreateRooms(ctx context.Context, floorID uuid.UUID, req dto.CreateRoomsRequest) (*dto.CreateRoomsResponse, error)
	ListByFloor(ctx context.Context, floorID uuid.UUID) ([]dto.RoomResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*dto.RoomDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	rooms       repository.RoomRepository
	floors      repository.FloorRepository
	assignments repository.AssignmentRepository
	needed      repository.NeededItemRepository
}

func NewRoomService(
	rooms repository.RoomRepository,
	floors repository.FloorRepository,
	assignments repository.AssignmentRepository,
	needed repository.NeededItemRepository,
) RoomService {
	return &roomService{rooms: rooms, floors: floors, assignments: assignments, needed: needed}
}

func (s *roomService) CreateRooms(ctx context.Context, floorID uuid.UUID, req dto.CreateRoomsRequest) (*dto.CreateRoomsResponse, error) {
	if _, err := s.floors.FindByID(ctx, floorID); err != nil {
		return nil, notFoundOr(err, "floor not found")
	}

	existing, err := s.rooms.ListNumbersByFloor(ctx, floorID)
	if err != nil {
		return nil, notFoundOr(err, "floor not found")
	}
	taken := make(map[string]bool, len(existing))
	for _, n := range existing {
		taken[n] = true
	}

	resp := &dto.CreateRoomsResponse{Created: []dto.RoomResponse{}, Skipped: []string{}}
	for _, number := range req.RoomNumbers {
		if taken[number] {
			resp.Skipped = append(resp.Skipped, number)
			continue
		}
		room := &model.Room{FloorID: floorID, RoomNumber: number}
		if err := s.rooms.Create(ctx, room); err != nil {
			return nil, notFoundOr(err, "room not found")
		}
		taken[number] = true
		resp.Created = append(resp.Created, *roomToResponse(room))
	}
	return resp, nil
}

func (s *roomService) ListByFloor(ctx context.Context, floorID uuid.UUID) ([]dto.RoomResponse, error) {
	rooms, err := s.rooms.ListByFloor(ctx, floorID)
	if err != nil {
		return nil, notFoundOr(err, "floor not found")
	}
	out := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, *roomToResponse(&rooms[i]))
	}
	return out, nil
}

func (s *roomService) Detail(ctx context.Context, id uuid.UUID) (*dto.RoomDetailResponse, error) {
	room, err := s.rooms.FindByIDWithFloor(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "room not found")
	}

	assignments, err := s.assignments.ListByRoom(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "room not found")
	}
	needed, err := s.needed.ListByRoom(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "room not found")
	}

	detail := &dto.RoomDetailResponse{
		RoomResponse: *roomToResponse(room),
		Assignments:  make([]dto.AssignmentResponse, 0, len(assignments)),
		NeededItems:  make([]dto.NeededItemResponse, 0, len(needed)),
	}
	if room.Floor != nil {
		detail.FloorDisplay = room.Floor.DisplayName
	}
	for i := range assignments {
		detail.Assignments = append(detail.Assignments, *assignmentToResponse(&assignments[i]))
	}
	for i := range needed {
		detail.NeededItems = append(detail.NeededItems, *neededToResponse(&needed[i]))
	}
	return detail, nil
}

func (s *roomService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "room not found")
	}
	room.RoomNumber = req.RoomNumber
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, notFoundOr(err, "room not found")
	}
	return roomToResponse(room), nil
}

func (s *roomService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "room not found")
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return notFoundOr(err, "room not found")
	}
	return nil
}

func roomToResponse(r *model.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:         r.ID.String(),
		FloorID:    r.FloorID.String(),
		RoomNumber: r.RoomNumber,
	}
}
