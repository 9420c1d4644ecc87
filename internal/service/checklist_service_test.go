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

func newChecklistService(s *memStore) service.ChecklistService {
	return service.NewChecklistService(
		&stubNeededRepo{s: s},
		&stubItemRepo{s: s},
		&stubAssignmentRepo{s: s},
		&stubRoomRepo{s: s},
	)
}

func TestCreateNeededItem(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("5", "5 East")
	room := s.seedRoom(floor.ID, "503")

	resp, err := svc.Create(context.Background(), dto.CreateNeededItemRequest{
		RoomID:   room.ID.String(),
		ItemType: "Curtain Rail",
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Curtain Rail", resp.ItemType)
	assert.False(t, resp.Fulfilled)
	assert.Len(t, s.needed, 1)
}

func TestCreateNeededItemUnknownRoom(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)

	_, err := svc.Create(context.Background(), dto.CreateNeededItemRequest{
		RoomID:   uuid.NewString(),
		ItemType: "Curtain Rail",
		Quantity: 1,
	})
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestFulfillGrowsExistingItem(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("1", "Ground")
	room := s.seedRoom(floor.ID, "104")
	item := s.seedItem("Headboard Type 1", 10, 4)
	n := s.seedNeeded(room.ID, "headboard type 1", 2) // matches case-insensitively

	resp, err := svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Fulfilled)

	// Both counters grew by the requested quantity.
	assert.Equal(t, 12, s.items[item.ID].QuantityTotal)
	assert.Equal(t, 6, s.items[item.ID].QuantityAssigned)
	assert.True(t, s.needed[n.ID].Fulfilled)

	// An in_room assignment now links the item to the room.
	require.Len(t, s.assignments, 1)
	for _, a := range s.assignments {
		assert.Equal(t, item.ID, a.ItemID)
		assert.Equal(t, room.ID, a.RoomID)
		assert.Equal(t, model.StatusInRoom, a.Status)
	}
}

func TestFulfillCreatesMissingItem(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("2", "2 West")
	room := s.seedRoom(floor.ID, "207")
	n := s.seedNeeded(room.ID, "Bedside Lamp", 3)

	_, err := svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)

	// A new item appeared with both counters at the requested quantity.
	require.Len(t, s.items, 1)
	for _, item := range s.items {
		assert.Equal(t, "Bedside Lamp", item.ItemType)
		assert.Equal(t, 3, item.QuantityTotal)
		assert.Equal(t, 3, item.QuantityAssigned)
	}
	require.Len(t, s.assignments, 1)
}

func TestFulfillKeepsExistingAssignment(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("3", "3 North")
	room := s.seedRoom(floor.ID, "311")
	item := s.seedItem("Chair", 5, 1)
	s.seedAssignment(item.ID, room.ID, model.StatusDelivering)
	n := s.seedNeeded(room.ID, "Chair", 1)

	_, err := svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)

	// No duplicate assignment was synthesized.
	assert.Len(t, s.assignments, 1)
	assert.Equal(t, 6, s.items[item.ID].QuantityTotal)
	assert.Equal(t, 2, s.items[item.ID].QuantityAssigned)
}

func TestUnfulfillReversesSynthesis(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("1", "Ground")
	room := s.seedRoom(floor.ID, "104")
	item := s.seedItem("Headboard Type 1", 10, 4)
	n := s.seedNeeded(room.ID, "Headboard Type 1", 2)

	_, err := svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)
	require.Equal(t, 12, s.items[item.ID].QuantityTotal)
	require.Equal(t, 6, s.items[item.ID].QuantityAssigned)

	_, err = svc.SetFulfilled(context.Background(), n.ID, false)
	require.NoError(t, err)

	assert.Equal(t, 4, s.items[item.ID].QuantityAssigned)
	assert.False(t, s.needed[n.ID].Fulfilled)
	assert.Empty(t, s.assignments)
}

func TestUnfulfillFloorsAssignedAtZero(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("4", "4 South")
	room := s.seedRoom(floor.ID, "402")
	// The item shrank since fulfillment: assigned is lower than the request.
	item := s.seedItem("Mirror", 5, 1)
	n := s.seedNeeded(room.ID, "Mirror", 3)
	n.Fulfilled = true

	_, err := svc.SetFulfilled(context.Background(), n.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, s.items[item.ID].QuantityAssigned)
}

func TestUnfulfillWithMissingItemFlipsFlagOnly(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("5", "5 East")
	room := s.seedRoom(floor.ID, "512")
	n := s.seedNeeded(room.ID, "Renamed Thing", 1)
	n.Fulfilled = true

	resp, err := svc.SetFulfilled(context.Background(), n.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Fulfilled)
	assert.False(t, s.needed[n.ID].Fulfilled)
}

func TestSetFulfilledIsIdempotent(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("6", "6 East")
	room := s.seedRoom(floor.ID, "604")
	item := s.seedItem("Desk", 4, 0)
	n := s.seedNeeded(room.ID, "Desk", 1)

	_, err := svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)
	require.Equal(t, 5, s.items[item.ID].QuantityTotal)

	// Same flag again must not double-apply the synthesis.
	_, err = svc.SetFulfilled(context.Background(), n.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 5, s.items[item.ID].QuantityTotal)
	assert.Equal(t, 1, s.items[item.ID].QuantityAssigned)
	assert.Len(t, s.assignments, 1)
}

func TestDeleteNeededItem(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("7", "7 West")
	room := s.seedRoom(floor.ID, "701")
	n := s.seedNeeded(room.ID, "Shelf", 1)

	require.NoError(t, svc.Delete(context.Background(), n.ID))
	assert.Empty(t, s.needed)

	err := svc.Delete(context.Background(), n.ID)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestListByRoom(t *testing.T) {
	s := newMemStore()
	svc := newChecklistService(s)
	floor := s.seedFloor("8", "8 North")
	roomA := s.seedRoom(floor.ID, "801")
	roomB := s.seedRoom(floor.ID, "802")
	s.seedNeeded(roomA.ID, "Chair", 2)
	s.seedNeeded(roomA.ID, "Desk", 1)
	s.seedNeeded(roomB.ID, "Lamp", 1)

	out, err := svc.ListByRoom(context.Background(), roomA.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
