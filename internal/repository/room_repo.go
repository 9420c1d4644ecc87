package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomRepository defines the data access contract for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error)
	FindByIDWithFloor(ctx context.Context, id uuid.UUID) (*model.Room, error)
	ListByFloor(ctx context.Context, floorID uuid.UUID) ([]model.Room, error)
	ListAllWithFloor(ctx context.Context) ([]model.Room, error)
	ListNumbersByFloor(ctx context.Context, floorID uuid.UUID) ([]string, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// FindOrCreateTx resolves the room for (floorID, roomNumber), creating it
	// when absent. A concurrent duplicate insert loses on the composite unique
	// constraint and falls back to re-fetching — the race is benign.
	FindOrCreateTx(tx *gorm.DB, floorID uuid.UUID, roomNumber string) (*model.Room, error)
}

type roomRepo struct{ db *gorm.DB }

func NewRoomRepository(db *gorm.DB) RoomRepository { return &roomRepo{db: db} }

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	return &room, err
}

func (r *roomRepo) FindByIDWithFloor(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).Preload("Floor").First(&room, "id = ?", id).Error
	return &room, err
}

func (r *roomRepo) ListByFloor(ctx context.Context, floorID uuid.UUID) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).Where("floor_id = ?", floorID).Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) ListAllWithFloor(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).Preload("Floor").Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) ListNumbersByFloor(ctx context.Context, floorID uuid.UUID) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("floor_id = ?", floorID).Pluck("room_number", &numbers).Error
	return numbers, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Room{}, "id = ?", id).Error
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&n).Error
	return n, err
}

func (r *roomRepo) FindOrCreateTx(tx *gorm.DB, floorID uuid.UUID, roomNumber string) (*model.Room, error) {
	var room model.Room
	err := tx.Where("floor_id = ? AND room_number = ?", floorID, roomNumber).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room = model.Room{FloorID: floorID, RoomNumber: roomNumber}
	if err := tx.Create(&room).Error; err != nil {
		// Lost the duplicate-room race — the constraint fired, re-fetch the winner.
		if isUniqueViolation(err) {
			var existing model.Room
			if ferr := tx.Where("floor_id = ? AND room_number = ?", floorID, roomNumber).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &room, nil
}

// isUniqueViolation matches Postgres unique-constraint failures without
// importing the driver's error types (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "23505")
}
