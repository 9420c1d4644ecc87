package repository

import (
	"context"

	"github.com/Juannyboy/tablebay-stock-flow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository defines the data access contract for item assignments.
type AssignmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ItemAssignment, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.ItemAssignment, error)
	ListAllWithItem(ctx context.Context) ([]model.ItemAssignment, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) error

	// Tx variants
	CreateTx(tx *gorm.DB, a *model.ItemAssignment) error
	FindByItemAndRoomTx(tx *gorm.DB, itemID, roomID uuid.UUID) (*model.ItemAssignment, error)
	UpdateItemTx(tx *gorm.DB, id, itemID uuid.UUID) error
	UpdateRoomTx(tx *gorm.DB, id, roomID uuid.UUID) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type assignmentRepo struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository { return &assignmentRepo{db: db} }

func (r *assignmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ItemAssignment, error) {
	var a model.ItemAssignment
	err := r.db.WithContext(ctx).Preload("Item").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *assignmentRepo) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]model.ItemAssignment, error) {
	var assignments []model.ItemAssignment
	err := r.db.WithContext(ctx).Preload("Item").
		Where("room_id = ?", roomID).Order("assigned_at ASC").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListAllWithItem(ctx context.Context) ([]model.ItemAssignment, error) {
	var assignments []model.ItemAssignment
	err := r.db.WithContext(ctx).Preload("Item").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	type row struct {
		Status string
		N      int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.ItemAssignment{}).
		Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.N
	}
	return counts, nil
}

func (r *assignmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) error {
	return r.db.WithContext(ctx).Model(&model.ItemAssignment{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *assignmentRepo) CreateTx(tx *gorm.DB, a *model.ItemAssignment) error {
	return tx.Create(a).Error
}

func (r *assignmentRepo) FindByItemAndRoomTx(tx *gorm.DB, itemID, roomID uuid.UUID) (*model.ItemAssignment, error) {
	var a model.ItemAssignment
	err := tx.Where("item_id = ? AND room_id = ?", itemID, roomID).First(&a).Error
	return &a, err
}

func (r *assignmentRepo) UpdateItemTx(tx *gorm.DB, id, itemID uuid.UUID) error {
	return tx.Model(&model.ItemAssignment{}).Where("id = ?", id).Update("item_id", itemID).Error
}

func (r *assignmentRepo) UpdateRoomTx(tx *gorm.DB, id, roomID uuid.UUID) error {
	return tx.Model(&model.ItemAssignment{}).Where("id = ?", id).Update("room_id", roomID).Error
}

func (r *assignmentRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.ItemAssignment{}, "id = ?", id).Error
}

func (r *assignmentRepo) DB() *gorm.DB { return r.db }
