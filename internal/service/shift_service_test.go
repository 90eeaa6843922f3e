package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/repository"
)

// MockShiftRepository is a mock implementation of ShiftRepository.
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id uint) (*model.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindJoinedByID(ctx context.Context, id uint) (*model.ShiftWithPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShiftWithPerson), args.Error(1)
}

func (m *MockShiftRepository) ListJoined(ctx context.Context, q repository.ShiftQuery) ([]model.ShiftWithPerson, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShiftWithPerson), args.Error(1)
}

func (m *MockShiftRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockShiftRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestShiftService_CreateShift(t *testing.T) {
	start := time.Date(2024, 2, 17, 18, 39, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "end after start succeeds",
			start: start,
			end:   start.Add(2 * time.Hour),
		},
		{
			name:    "end before start fails",
			start:   start,
			end:     start.Add(-24 * time.Hour),
			wantErr: apperrors.ErrEndBeforeStart,
		},
		{
			name:    "end equal to start fails",
			start:   start,
			end:     start,
			wantErr: apperrors.ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shifts := new(MockShiftRepository)
			svc := NewShiftService(shifts, zerolog.Nop())

			if tt.wantErr == nil {
				shifts.On("Create", mock.Anything, mock.AnythingOfType("*model.Shift")).Return(nil).Once()
			}

			err := svc.CreateShift(context.Background(), &model.Shift{
				StartTime: tt.start,
				EndTime:   tt.end,
				PersonID:  1,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				shifts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				shifts.AssertExpectations(t)
			}
		})
	}
}

func TestShiftService_GetShift(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	want := &model.ShiftWithPerson{ID: 5, PersonID: 2, FirstName: "Ahsoka", LastName: "Tano"}
	shifts.On("FindByID", mock.Anything, uint(5)).Return(&model.Shift{ID: 5, PersonID: 2}, nil).Once()
	shifts.On("FindJoinedByID", mock.Anything, uint(5)).Return(want, nil).Once()

	got, err := svc.GetShift(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShiftService_GetShift_NotFound(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	shifts.On("FindByID", mock.Anything, uint(123456)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.GetShift(context.Background(), 123456)

	assert.ErrorIs(t, err, apperrors.ErrShiftNotFound)
	shifts.AssertNotCalled(t, "FindJoinedByID", mock.Anything, mock.Anything)
}

// A bare shift row whose person is gone exists but cannot be joined; the
// lookup still reports not-found while the listing path would just skip it.
func TestShiftService_GetShift_DanglingPersonReportsNotFound(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	shifts.On("FindByID", mock.Anything, uint(5)).Return(&model.Shift{ID: 5, PersonID: 99}, nil).Once()
	shifts.On("FindJoinedByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.GetShift(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrShiftNotFound)
}

func TestShiftService_ListShifts(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.ShiftWithPerson{
		{ID: 2, StartTime: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: 1, StartTime: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)},
	}

	shifts.On("ListJoined", mock.Anything, mock.MatchedBy(func(q repository.ShiftQuery) bool {
		return q.SearchString == "Peter Postman" &&
			q.PersonID == nil &&
			q.StartDate != nil && q.StartDate.Equal(startDate) &&
			q.EndDate == nil &&
			q.Order != nil && q.Order.Column == "shifts.start_time" && q.Order.Descending
	})).Return(rows, nil).Once()

	got, err := svc.ListShifts(context.Background(), "Peter Postman", &startDate, nil, "start_time", "desc")

	assert.NoError(t, err)
	assert.Equal(t, rows, got)

	// descending start_time sequence is non-increasing
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].StartTime.After(got[i-1].StartTime))
	}
}

func TestShiftService_ListShifts_InvalidOrderType(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	_, err := svc.ListShifts(context.Background(), "", nil, nil, "start_time", "upwards")

	var orderErr *apperrors.InvalidOrderTypeError
	assert.ErrorAs(t, err, &orderErr)
	assert.Equal(t, "Order type is either asc or desc, you entered upwards", err.Error())
	shifts.AssertNotCalled(t, "ListJoined", mock.Anything, mock.Anything)
}

func TestShiftService_UpdateShift(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	start := time.Date(2024, 2, 17, 8, 0, 0, 0, time.UTC)
	end := start.Add(9 * time.Hour)
	comment := "Jobbade 2 timmar övertid"

	shifts.On("FindByID", mock.Anything, uint(6)).Return(&model.Shift{ID: 6}, nil).Once()
	shifts.On("UpdateFields", mock.Anything, uint(6), mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["start_time"] == start && fields["end_time"] == end && fields["comment"] == &comment
	})).Return(nil).Once()

	err := svc.UpdateShift(context.Background(), 6, start, end, &comment)

	assert.NoError(t, err)
	shifts.AssertExpectations(t)
}

// The time-range check runs before the existence check, so an inverted range
// reports the range error even for a missing shift.
func TestShiftService_UpdateShift_InvalidRangeBeforeExistence(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	start := time.Date(2024, 2, 17, 8, 0, 0, 0, time.UTC)

	err := svc.UpdateShift(context.Background(), 404, start, start.Add(-time.Hour), nil)

	assert.ErrorIs(t, err, apperrors.ErrEndBeforeStart)
	shifts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestShiftService_UpdateShift_NotFound(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	start := time.Date(2024, 2, 17, 8, 0, 0, 0, time.UTC)
	shifts.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	err := svc.UpdateShift(context.Background(), 404, start, start.Add(time.Hour), nil)

	assert.ErrorIs(t, err, apperrors.ErrShiftNotFound)
}

func TestShiftService_DeleteShift(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	shifts.On("FindByID", mock.Anything, uint(8)).Return(&model.Shift{ID: 8}, nil).Once()
	shifts.On("Delete", mock.Anything, uint(8)).Return(nil).Once()

	err := svc.DeleteShift(context.Background(), 8)

	assert.NoError(t, err)
	shifts.AssertExpectations(t)
}

func TestShiftService_DeleteShift_NotFound(t *testing.T) {
	shifts := new(MockShiftRepository)
	svc := NewShiftService(shifts, zerolog.Nop())

	shifts.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound).Once()

	err := svc.DeleteShift(context.Background(), 8)

	assert.ErrorIs(t, err, apperrors.ErrShiftNotFound)
	shifts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestShift_TimeWorked(t *testing.T) {
	start := time.Date(2024, 1, 30, 8, 0, 0, 0, time.UTC)
	shift := &model.Shift{StartTime: start, EndTime: start.Add(9 * time.Hour)}

	assert.Equal(t, 9*time.Hour, shift.TimeWorked())
}
