package service_test

import (
	"context"
	"sort"
	"strings"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// equalFoldTrim mirrors the case-insensitive item_type matching the real
// repository does with LOWER() in SQL.
func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// memStore is the shared backing map set for all stub repositories, standing
// in for the database in unit tests. Stubs return gorm.ErrRecordNotFound so
// the services' errors.Is checks behave exactly as they do against Postgres.
type memStore struct {
	floors      map[uuid.UUID]*model.Floor
	rooms       map[uuid.UUID]*model.Room
	items       map[uuid.UUID]*model.Item
	assignments map[uuid.UUID]*model.ItemAssignment
	transfers   []*model.ItemTransfer
	needed      map[uuid.UUID]*model.NeededItem
}

func newMemStore() *memStore {
	return &memStore{
		floors:      make(map[uuid.UUID]*model.Floor),
		rooms:       make(map[uuid.UUID]*model.Room),
		items:       make(map[uuid.UUID]*model.Item),
		assignments: make(map[uuid.UUID]*model.ItemAssignment),
		needed:      make(map[uuid.UUID]*model.NeededItem),
	}
}

// ── Seed helpers ─────────────────────────────────────────────────────────────

func (s *memStore) seedFloor(number, display string) *model.Floor {
	f := &model.Floor{ID: uuid.New(), FloorNumber: number, DisplayName: display}
	s.floors[f.ID] = f
	return f
}

func (s *memStore) seedRoom(floorID uuid.UUID, number string) *model.Room {
	r := &model.Room{ID: uuid.New(), FloorID: floorID, RoomNumber: number, Floor: s.floors[floorID]}
	s.rooms[r.ID] = r
	return r
}

func (s *memStore) seedItem(itemType string, total, assigned int) *model.Item {
	i := &model.Item{ID: uuid.New(), ItemType: itemType, QuantityTotal: total, QuantityAssigned: assigned}
	s.items[i.ID] = i
	return i
}

func (s *memStore) seedAssignment(itemID, roomID uuid.UUID, status model.AssignmentStatus) *model.ItemAssignment {
	a := &model.ItemAssignment{ID: uuid.New(), ItemID: itemID, RoomID: roomID, Status: status}
	s.assignments[a.ID] = a
	return a
}

func (s *memStore) seedNeeded(roomID uuid.UUID, itemType string, quantity int) *model.NeededItem {
	n := &model.NeededItem{ID: uuid.New(), RoomID: roomID, ItemType: itemType, Quantity: quantity}
	s.needed[n.ID] = n
	return n
}

// ── FloorRepository stub ─────────────────────────────────────────────────────

type stubFloorRepo struct{ s *memStore }

func (r *stubFloorRepo) Create(_ context.Context, f *model.Floor) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.s.floors[f.ID] = f
	return nil
}

func (r *stubFloorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Floor, error) {
	f, ok := r.s.floors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFloorRepo) List(_ context.Context) ([]model.Floor, error) {
	out := make([]model.Floor, 0, len(r.s.floors))
	for _, f := range r.s.floors {
		cp := *f
		for _, room := range r.s.rooms {
			if room.FloorID == f.ID {
				cp.Rooms = append(cp.Rooms, *room)
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FloorNumber < out[j].FloorNumber })
	return out, nil
}

func (r *stubFloorRepo) Update(_ context.Context, f *model.Floor) error {
	if _, ok := r.s.floors[f.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.floors[f.ID] = f
	return nil
}

func (r *stubFloorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.floors, id)
	return nil
}

func (r *stubFloorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.floors)), nil
}

var _ repository.FloorRepository = (*stubFloorRepo)(nil)

// ── RoomRepository stub ──────────────────────────────────────────────────────

type stubRoomRepo struct{ s *memStore }

func (r *stubRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.s.rooms[room.ID] = room
	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Room, error) {
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *stubRoomRepo) FindByIDWithFloor(_ context.Context, id uuid.UUID) (*model.Room, error) {
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *room
	cp.Floor = r.s.floors[room.FloorID]
	return &cp, nil
}

func (r *stubRoomRepo) ListByFloor(_ context.Context, floorID uuid.UUID) ([]model.Room, error) {
	var out []model.Room
	for _, room := range r.s.rooms {
		if room.FloorID == floorID {
			out = append(out, *room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (r *stubRoomRepo) ListAllWithFloor(_ context.Context) ([]model.Room, error) {
	var out []model.Room
	for _, room := range r.s.rooms {
		cp := *room
		cp.Floor = r.s.floors[room.FloorID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (r *stubRoomRepo) ListNumbersByFloor(_ context.Context, floorID uuid.UUID) ([]string, error) {
	var numbers []string
	for _, room := range r.s.rooms {
		if room.FloorID == floorID {
			numbers = append(numbers, room.RoomNumber)
		}
	}
	return numbers, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *model.Room) error {
	if _, ok := r.s.rooms[room.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.rooms[room.ID] = room
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.rooms, id)
	return nil
}

func (r *stubRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.rooms)), nil
}

func (r *stubRoomRepo) FindOrCreateTx(_ *gorm.DB, floorID uuid.UUID, roomNumber string) (*model.Room, error) {
	for _, room := range r.s.rooms {
		if room.FloorID == floorID && room.RoomNumber == roomNumber {
			cp := *room
			return &cp, nil
		}
	}
	room := &model.Room{ID: uuid.New(), FloorID: floorID, RoomNumber: roomNumber}
	r.s.rooms[room.ID] = room
	cp := *room
	return &cp, nil
}

var _ repository.RoomRepository = (*stubRoomRepo)(nil)

// ── ItemRepository stub ──────────────────────────────────────────────────────

type stubItemRepo struct{ s *memStore }

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.s.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(r.s.items))
	for _, item := range r.s.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemType < out[j].ItemType })
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *model.Item) error {
	if _, ok := r.s.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.items, id)
	return nil
}

func (r *stubItemRepo) SumTotals(_ context.Context) (int64, error) {
	var sum int64
	for _, item := range r.s.items {
		sum += int64(item.QuantityTotal)
	}
	return sum, nil
}

func (r *stubItemRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Item, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubItemRepo) FindByTypeTx(_ *gorm.DB, itemType string) (*model.Item, error) {
	for _, item := range r.s.items {
		if equalFoldTrim(item.ItemType, itemType) {
			cp := *item
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) CreateTx(_ *gorm.DB, item *model.Item) error {
	return r.Create(context.Background(), item)
}

func (r *stubItemRepo) AdjustAssignedTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	item, ok := r.s.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.QuantityAssigned += delta
	return nil
}

func (r *stubItemRepo) AdjustBothTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	item, ok := r.s.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.QuantityTotal += delta
	item.QuantityAssigned += delta
	return nil
}

func (r *stubItemRepo) SetAssignedTx(_ *gorm.DB, id uuid.UUID, value int) error {
	item, ok := r.s.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.QuantityAssigned = value
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── AssignmentRepository stub ────────────────────────────────────────────────

type stubAssignmentRepo struct{ s *memStore }

func (r *stubAssignmentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ItemAssignment, error) {
	a, ok := r.s.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	cp.Item = r.s.items[a.ItemID]
	return &cp, nil
}

func (r *stubAssignmentRepo) ListByRoom(_ context.Context, roomID uuid.UUID) ([]model.ItemAssignment, error) {
	var out []model.ItemAssignment
	for _, a := range r.s.assignments {
		if a.RoomID == roomID {
			cp := *a
			cp.Item = r.s.items[a.ItemID]
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *stubAssignmentRepo) ListAllWithItem(_ context.Context) ([]model.ItemAssignment, error) {
	out := make([]model.ItemAssignment, 0, len(r.s.assignments))
	for _, a := range r.s.assignments {
		cp := *a
		cp.Item = r.s.items[a.ItemID]
		out = append(out, cp)
	}
	return out, nil
}

func (r *stubAssignmentRepo) CountByStatus(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range r.s.assignments {
		counts[string(a.Status)]++
	}
	return counts, nil
}

func (r *stubAssignmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.AssignmentStatus) error {
	a, ok := r.s.assignments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAssignmentRepo) CreateTx(_ *gorm.DB, a *model.ItemAssignment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	cp.Item = nil
	cp.Room = nil
	r.s.assignments[cp.ID] = &cp
	return nil
}

func (r *stubAssignmentRepo) FindByItemAndRoomTx(_ *gorm.DB, itemID, roomID uuid.UUID) (*model.ItemAssignment, error) {
	for _, a := range r.s.assignments {
		if a.ItemID == itemID && a.RoomID == roomID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAssignmentRepo) UpdateItemTx(_ *gorm.DB, id, itemID uuid.UUID) error {
	a, ok := r.s.assignments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.ItemID = itemID
	return nil
}

func (r *stubAssignmentRepo) UpdateRoomTx(_ *gorm.DB, id, roomID uuid.UUID) error {
	a, ok := r.s.assignments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.RoomID = roomID
	return nil
}

func (r *stubAssignmentRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.s.assignments, id)
	return nil
}

func (r *stubAssignmentRepo) DB() *gorm.DB { return nil }

var _ repository.AssignmentRepository = (*stubAssignmentRepo)(nil)

// ── TransferRepository stub ──────────────────────────────────────────────────

type stubTransferRepo struct{ s *memStore }

func (r *stubTransferRepo) CreateTx(_ *gorm.DB, t *model.ItemTransfer) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	r.s.transfers = append(r.s.transfers, &cp)
	return nil
}

func (r *stubTransferRepo) ListByAssignment(_ context.Context, assignmentID uuid.UUID) ([]model.ItemTransfer, error) {
	var out []model.ItemTransfer
	for _, t := range r.s.transfers {
		if t.AssignmentID == assignmentID {
			cp := *t
			cp.FromRoom = r.s.rooms[t.FromRoomID]
			cp.ToRoom = r.s.rooms[t.ToRoomID]
			out = append(out, cp)
		}
	}
	return out, nil
}

var _ repository.TransferRepository = (*stubTransferRepo)(nil)

// ── NeededItemRepository stub ────────────────────────────────────────────────

type stubNeededRepo struct{ s *memStore }

func (r *stubNeededRepo) Create(_ context.Context, n *model.NeededItem) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.s.needed[n.ID] = n
	return nil
}

func (r *stubNeededRepo) FindByID(_ context.Context, id uuid.UUID) (*model.NeededItem, error) {
	n, ok := r.s.needed[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *stubNeededRepo) ListByRoom(_ context.Context, roomID uuid.UUID) ([]model.NeededItem, error) {
	var out []model.NeededItem
	for _, n := range r.s.needed {
		if n.RoomID == roomID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNeededRepo) ListAll(_ context.Context) ([]model.NeededItem, error) {
	out := make([]model.NeededItem, 0, len(r.s.needed))
	for _, n := range r.s.needed {
		out = append(out, *n)
	}
	return out, nil
}

func (r *stubNeededRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.needed, id)
	return nil
}

func (r *stubNeededRepo) SetFulfilledTx(_ *gorm.DB, id uuid.UUID, fulfilled bool) error {
	n, ok := r.s.needed[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.Fulfilled = fulfilled
	return nil
}

func (r *stubNeededRepo) DB() *gorm.DB { return nil }

var _ repository.NeededItemRepository = (*stubNeededRepo)(nil)
