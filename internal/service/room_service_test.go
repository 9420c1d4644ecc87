package service_test

import (
	"context"
	"testing"

	"github.com/Juannyboy/tablebay-stock-flow/internal/apperr"
	"github.com/Juannyboy/tablebay-stock-flow/internal/dto"
	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomService(s *memStore) service.RoomService {
	return service.NewRoomService(
		&stubRoomRepo{s: s},
		&stubFloorRepo{s: s},
		&stubAssignmentRepo{s: s},
		&stubNeededRepo{s: s},
	)
}

func TestCreateRoomsSkipsExistingNumbers(t *testing.T) {
	s := newMemStore()
	svc := newRoomService(s)
	floor := s.seedFloor("5", "5 East")
	s.seedRoom(floor.ID, "502")

	resp, err := svc.CreateRooms(context.Background(), floor.ID, dto.CreateRoomsRequest{
		RoomNumbers: []string{"501", "502", "503", "503"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Created, 2)
	assert.ElementsMatch(t, []string{"502", "503"}, resp.Skipped)
	assert.Len(t, s.rooms, 3)
}

func TestCreateRoomsUnknownFloor(t *testing.T) {
	s := newMemStore()
	svc := newRoomService(s)

	_, err := svc.CreateRooms(context.Background(), uuid.New(), dto.CreateRoomsRequest{
		RoomNumbers: []string{"101"},
	})
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestRoomDetailJoinsAssignmentsAndChecklist(t *testing.T) {
	s := newMemStore()
	svc := newRoomService(s)
	floor := s.seedFloor("2", "2 West")
	room := s.seedRoom(floor.ID, "203")
	item := s.seedItem("Chair", 5, 1)
	s.seedAssignment(item.ID, room.ID, model.StatusBuilt)
	s.seedNeeded(room.ID, "Lamp", 2)

	detail, err := svc.Detail(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, "203", detail.RoomNumber)
	assert.Equal(t, "2 West", detail.FloorDisplay)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, "Chair", detail.Assignments[0].ItemType)
	assert.Equal(t, "built", detail.Assignments[0].Status)
	require.Len(t, detail.NeededItems, 1)
	assert.Equal(t, "Lamp", detail.NeededItems[0].ItemType)
}

func TestUpdateRoomNumber(t *testing.T) {
	s := newMemStore()
	svc := newRoomService(s)
	floor := s.seedFloor("3", "3 North")
	room := s.seedRoom(floor.ID, "301")

	resp, err := svc.Update(context.Background(), room.ID, dto.UpdateRoomRequest{RoomNumber: "301A"})
	require.NoError(t, err)
	assert.Equal(t, "301A", resp.RoomNumber)
	assert.Equal(t, "301A", s.rooms[room.ID].RoomNumber)
}

func TestDeleteRoomNotFound(t *testing.T) {
	s := newMemStore()
	svc := newRoomService(s)

	err := svc.Delete(context.Background(), uuid.New())
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, kind)
}
