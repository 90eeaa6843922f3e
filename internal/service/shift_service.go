package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
)

// ShiftService handles shift operations.
type ShiftService interface {
	CreateShift(ctx context.Context, shift *model.Shift) error
	GetShift(ctx context.Context, id uint) (*model.ShiftWithPerson, error)
	ListShifts(ctx context.Context, searchString string, startDate, endDate *time.Time, sortBy, orderType string) ([]model.ShiftWithPerson, error)
	UpdateShift(ctx context.Context, id uint, startTime, endTime time.Time, comment *string) error
	DeleteShift(ctx context.Context, id uint) error
}

type shiftService struct {
	shifts repository.ShiftRepository
	log    zerolog.Logger
}

// NewShiftService creates a new shift service.
func NewShiftService(shifts repository.ShiftRepository, log zerolog.Logger) ShiftService {
	return &shiftService{shifts: shifts, log: log}
}

// CreateShift persists a shift. The end time must come after the start time.
func (s *shiftService) CreateShift(ctx context.Context, shift *model.Shift) error {
	if !shift.EndTime.After(shift.StartTime) {
		return apperrors.ErrEndBeforeStart
	}
	return s.shifts.Create(ctx, shift)
}

// GetShift existence-checks the bare shift row, then fetches the joined
// projection. A shift whose person row is missing still reports not-found.
func (s *shiftService) GetShift(ctx context.Context, id uint) (*model.ShiftWithPerson, error) {
	if _, err := s.shifts.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}

	joined, err := s.shifts.FindJoinedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}
	return joined, nil
}

// ListShifts returns shifts across all persons joined with person names.
func (s *shiftService) ListShifts(ctx context.Context, searchString string, startDate, endDate *time.Time, sortBy, orderType string) ([]model.ShiftWithPerson, error) {
	order, err := orderFrom(shiftSortColumns, sortBy, orderType)
	if err != nil {
		return nil, err
	}

	return s.shifts.ListJoined(ctx, repository.ShiftQuery{
		SearchString: searchString,
		StartDate:    startDate,
		EndDate:      endDate,
		Order:        order,
	})
}

// UpdateShift replaces the editable fields. The time-range check runs before
// the existence check, so a bad range on a missing shift still reports the
// range error.
func (s *shiftService) UpdateShift(ctx context.Context, id uint, startTime, endTime time.Time, comment *string) error {
	if !endTime.After(startTime) {
		return apperrors.ErrEndBeforeStart
	}

	if _, err := s.shifts.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return err
	}

	return s.shifts.UpdateFields(ctx, id, map[string]interface{}{
		"start_time": startTime,
		"end_time":   endTime,
		"comment":    comment,
	})
}

// DeleteShift removes the shift only. Overtime rows referencing it are left
// in place.
func (s *shiftService) DeleteShift(ctx context.Context, id uint) error {
	if _, err := s.shifts.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return err
	}

	if err := s.shifts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("shift_id", id).Msg("shift deleted")
	return nil
}
