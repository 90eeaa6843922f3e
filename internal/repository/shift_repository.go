package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shiftbook/internal/model"
)

const shiftJoinColumns = "shifts.id, shifts.start_time, shifts.end_time, shifts.comment, " +
	"shifts.person_id, shifts.created_at, shifts.updated_at, " +
	"shifts.field_A, shifts.field_B, shifts.field_C, shifts.field_D, shifts.field_E, " +
	"persons.first_name, persons.last_name"

// ShiftQuery carries the composed listing criteria for joined shifts.
type ShiftQuery struct {
	SearchString string
	PersonID     *uint
	StartDate    *time.Time
	EndDate      *time.Time
	Order        *Order
}

// ShiftRepository defines shift persistence operations. Person ownership is
// resolved through explicit person_id lookups, never implicit traversal.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	FindByID(ctx context.Context, id uint) (*model.Shift, error)
	FindJoinedByID(ctx context.Context, id uint) (*model.ShiftWithPerson, error)
	ListJoined(ctx context.Context, q ShiftQuery) ([]model.ShiftWithPerson, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository builds a GORM-backed repository.
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) FindByID(ctx context.Context, id uint) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.WithContext(ctx).First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindJoinedByID fetches the shift joined with its owning person. A shift
// whose person row is missing yields gorm.ErrRecordNotFound even when the
// bare shift exists.
func (r *shiftRepository) FindJoinedByID(ctx context.Context, id uint) (*model.ShiftWithPerson, error) {
	var row model.ShiftWithPerson
	err := r.db.WithContext(ctx).
		Table("shifts").
		Select(shiftJoinColumns).
		Joins("INNER JOIN persons ON persons.id = shifts.person_id").
		Where("shifts.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListJoined materializes the full filtered, sorted result set of shifts
// joined with person names. Inner-join semantics silently exclude shifts
// whose person row is missing. Composition: search filter, join scope, sort,
// date filters; pagination happens on the returned slice.
func (r *shiftRepository) ListJoined(ctx context.Context, q ShiftQuery) ([]model.ShiftWithPerson, error) {
	tx := r.db.WithContext(ctx).
		Table("shifts").
		Select(shiftJoinColumns).
		Joins("INNER JOIN persons ON persons.id = shifts.person_id")

	if q.SearchString != "" {
		tx = tx.Scopes(NameSearch(q.SearchString, "persons"))
	}
	if q.PersonID != nil {
		tx = tx.Where("shifts.person_id = ?", *q.PersonID)
	}
	tx = tx.Scopes(Sorted(q.Order), ShiftDateRange(q.StartDate, q.EndDate))

	var rows []model.ShiftWithPerson
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *shiftRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the shift only. Dependent overtime rows are not cleaned up.
func (r *shiftRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, id).Error
}
