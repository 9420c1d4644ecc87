package repository

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NeededItemRepository defines the data access contract for checklist requests.
type NeededItemRepository interface {
	Create(ctx context.Context, n *model.NeededItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NeededItem, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.NeededItem, error)
	ListAll(ctx context.Context) ([]model.NeededItem, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetFulfilledTx flips the flag inside the reconciliation transaction.
	SetFulfilledTx(tx *gorm.DB, id uuid.UUID, fulfilled bool) error

	DB() *gorm.DB
}

type neededItemRepo struct{ db *gorm.DB }

func NewNeededItemRepository(db *gorm.DB) NeededItemRepository { return &neededItemRepo{db: db} }

func (r *neededItemRepo) Create(ctx context.Context, n *model.NeededItem) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *neededItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.NeededItem, error) {
	var n model.NeededItem
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	return &n, err
}

func (r *neededItemRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.NeededItem, error) {
	var items []model.NeededItem
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).
		Order("requested_at ASC").Find(&items).Error
	return items, err
}

func (r *neededItemRepo) ListAll(ctx context.Context) ([]model.NeededItem, error) {
	var items []model.NeededItem
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *neededItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NeededItem{}, "id = ?", id).Error
}

func (r *neededItemRepo) SetFulfilledTx(tx *gorm.DB, id uuid.UUID, fulfilled bool) error {
	return tx.Model(&model.NeededItem{}).Where("id = ?", id).Update("fulfilled", fulfilled).Error
}

func (r *neededItemRepo) DB() *gorm.DB { return r.db }
