package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
)

// OvertimeService handles overtime operations.
type OvertimeService interface {
	CreateOvertime(ctx context.Context, overtime *model.Overtime) error
	ListOvertimes(ctx context.Context) ([]model.Overtime, error)
	GetOvertimesForShift(ctx context.Context, shiftID uint) ([]model.Overtime, error)
}

type overtimeService struct {
	overtimes repository.OvertimeRepository
	shifts    repository.ShiftRepository
}

// NewOvertimeService creates a new overtime service.
func NewOvertimeService(overtimes repository.OvertimeRepository, shifts repository.ShiftRepository) OvertimeService {
	return &overtimeService{overtimes: overtimes, shifts: shifts}
}

// CreateOvertime persists the overtime record. The referenced shift_id is not
// checked for existence.
func (s *overtimeService) CreateOvertime(ctx context.Context, overtime *model.Overtime) error {
	return s.overtimes.Create(ctx, overtime)
}

// ListOvertimes returns all overtime records.
func (s *overtimeService) ListOvertimes(ctx context.Context) ([]model.Overtime, error) {
	return s.overtimes.List(ctx)
}

// GetOvertimesForShift returns the overtime rows for a shift, requiring the
// shift to exist first.
func (s *overtimeService) GetOvertimesForShift(ctx context.Context, shiftID uint) ([]model.Overtime, error) {
	if _, err := s.shifts.FindByID(ctx, shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}
	return s.overtimes.FindByShiftID(ctx, shiftID)
}
