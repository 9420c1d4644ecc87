package repository

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for stock items.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumTotals(ctx context.Context) (int64, error)

	// Tx variants — used inside logical transactions; callers pass the tx handle.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Item, error)
	// FindByTypeTx resolves an item by case-insensitive item_type match. This
	// is the one place the loose needed-item coupling touches storage.
	FindByTypeTx(tx *gorm.DB, itemType string) (*model.Item, error)
	CreateTx(tx *gorm.DB, item *model.Item) error
	// AdjustAssignedTx shifts quantity_assigned by delta in place.
	AdjustAssignedTx(tx *gorm.DB, id uuid.UUID, delta int) error
	// AdjustBothTx shifts quantity_total and quantity_assigned by delta —
	// the fulfillment flow grows/shrinks both sides together.
	AdjustBothTx(tx *gorm.DB, id uuid.UUID, delta int) error
	SetAssignedTx(tx *gorm.DB, id uuid.UUID, value int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("item_type ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id).Error
}

func (r *itemRepo) SumTotals(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("COALESCE(SUM(quantity_total), 0)").Scan(&sum).Error
	return sum, err
}

func (r *itemRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := tx.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *itemRepo) FindByTypeTx(tx *gorm.DB, itemType string) (*model.Item, error) {
	var item model.Item
	err := tx.Where("LOWER(item_type) = LOWER(?)", itemType).First(&item).Error
	return &item, err
}

func (r *itemRepo) CreateTx(tx *gorm.DB, item *model.Item) error {
	return tx.Create(item).Error
}

func (r *itemRepo) AdjustAssignedTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("quantity_assigned", gorm.Expr("quantity_assigned + ?", delta)).Error
}

func (r *itemRepo) AdjustBothTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity_total":    gorm.Expr("quantity_total + ?", delta),
		"quantity_assigned": gorm.Expr("quantity_assigned + ?", delta),
	}).Error
}

func (r *itemRepo) SetAssignedTx(tx *gorm.DB, id uuid.UUID, value int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("quantity_assigned", value).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
