package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftbook/internal/model"
)

// OvertimeRepository defines overtime persistence operations.
type OvertimeRepository interface {
	Create(ctx context.Context, overtime *model.Overtime) error
	List(ctx context.Context) ([]model.Overtime, error)
	FindByShiftID(ctx context.Context, shiftID uint) ([]model.Overtime, error)
}

type overtimeRepository struct {
	db *gorm.DB
}

// NewOvertimeRepository builds a GORM-backed repository.
func NewOvertimeRepository(db *gorm.DB) OvertimeRepository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) Create(ctx context.Context, overtime *model.Overtime) error {
	return r.db.WithContext(ctx).Create(overtime).Error
}

func (r *overtimeRepository) List(ctx context.Context) ([]model.Overtime, error) {
	var overtimes []model.Overtime
	if err := r.db.WithContext(ctx).Find(&overtimes).Error; err != nil {
		return nil, err
	}
	return overtimes, nil
}

func (r *overtimeRepository) FindByShiftID(ctx context.Context, shiftID uint) ([]model.Overtime, error) {
	var overtimes []model.Overtime
	if err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Find(&overtimes).Error; err != nil {
		return nil, err
	}
	return overtimes, nil
}
