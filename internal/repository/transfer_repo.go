package repository

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRepository records and reads the immutable transfer audit trail.
// There is deliberately no update or delete.
type TransferRepository interface {
	CreateTx(tx *gorm.DB, t *model.ItemTransfer) error
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]model.ItemTransfer, error)
}

type transferRepo struct{ db *gorm.DB }

func NewTransferRepository(db *gorm.DB) TransferRepository { return &transferRepo{db: db} }

func (r *transferRepo) CreateTx(tx *gorm.DB, t *model.ItemTransfer) error {
	return tx.Create(t).Error
}

func (r *transferRepo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]model.ItemTransfer, error) {
	var transfers []model.ItemTransfer
	err := r.db.WithContext(ctx).Preload("FromRoom").Preload("ToRoom").
		Where("assignment_id = ?", assignmentID).
		Order("transferred_at ASC").Find(&transfers).Error
	return transfers, err
}
