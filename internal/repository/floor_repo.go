package repository

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FloorRepository defines the data access contract for floors.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type FloorRepository interface {
	Create(ctx context.Context, f *model.Floor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Floor, error)
	List(ctx context.Context) ([]model.Floor, error)
	Update(ctx context.Context, f *model.Floor) error
	// Delete removes the floor; rooms (and their assignments / needed items)
	// go with it via the declared FK cascades.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type floorRepo struct{ db *gorm.DB }

func NewFloorRepository(db *gorm.DB) FloorRepository { return &floorRepo{db: db} }

func (r *floorRepo) Create(ctx context.Context, f *model.Floor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *floorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Floor, error) {
	var f model.Floor
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *floorRepo) List(ctx context.Context) ([]model.Floor, error) {
	var floors []model.Floor
	err := r.db.WithContext(ctx).Preload("Rooms").Order("floor_number ASC").Find(&floors).Error
	return floors, err
}

func (r *floorRepo) Update(ctx context.Context, f *model.Floor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *floorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Floor{}, "id = ?", id).Error
}

func (r *floorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Floor{}).Count(&n).Error
	return n, err
}
