package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
)

// MockPersonService is a mock implementation of service.PersonService.
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockPersonService) GetPerson(ctx context.Context, id uint) (*model.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockPersonService) ListPersons(ctx context.Context, searchString, sortBy, orderType string) ([]model.Person, error) {
	args := m.Called(ctx, searchString, sortBy, orderType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Person), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, id uint, firstName, lastName string, jobRole *string, birthday *time.Time) error {
	args := m.Called(ctx, id, firstName, lastName, jobRole, birthday)
	return args.Error(0)
}

func (m *MockPersonService) DeletePerson(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPersonService) ListShiftsForPerson(ctx context.Context, personID uint, startDate, endDate *time.Time, sortBy, orderType string) ([]model.ShiftWithPerson, error) {
	args := m.Called(ctx, personID, startDate, endDate, sortBy, orderType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShiftWithPerson), args.Error(1)
}

func TestPersonHandler_CreatePerson_EchoesInput(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	svc.On("CreatePerson", mock.Anything, mock.MatchedBy(func(p *model.Person) bool {
		return p.FirstName == "Anders" && p.LastName == "Postman"
	})).Return(&model.Person{ID: 1, FirstName: "Anders", LastName: "Postman", DisplayTag: "andpo123"}, nil).Once()

	body := `{"first_name":"Anders","last_name":"Postman"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/person", body), rec)

	err := h.CreatePerson(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var echoed PersonInput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &echoed))
	assert.Equal(t, "Anders", echoed.FirstName)
	assert.Equal(t, "Postman", echoed.LastName)
	svc.AssertExpectations(t)
}

func TestPersonHandler_CreatePerson_MissingLastName(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/person", `{"first_name":"Anders"}`), rec)

	err := h.CreatePerson(c)

	code, _ := detailOf(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	svc.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
}

func TestPersonHandler_ListPersons_SearchPresentInItems(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	persons := []model.Person{{ID: 1, FirstName: "Anders", LastName: "Postman", DisplayTag: "andpo123"}}
	svc.On("ListPersons", mock.Anything, "Anders Postman", "", "").Return(persons, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/person?search_string=Anders%20Postman", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListPersons(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Items []model.Person `json:"items"`
		Total int64          `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Items, 1)
	assert.Equal(t, "Anders", envelope.Items[0].FirstName)
}

func TestPersonHandler_GetPerson_NotFound(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	svc.On("GetPerson", mock.Anything, uint(42)).Return(nil, apperrors.ErrPersonNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/person/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("person_id")
	c.SetParamValues("42")

	err := h.GetPerson(c)

	code, detail := detailOf(t, err)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Person not found", detail)
}

func TestPersonHandler_GetPerson_NonNumericID(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/person/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("person_id")
	c.SetParamValues("abc")

	err := h.GetPerson(c)

	code, _ := detailOf(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestPersonHandler_DeletePerson(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	svc.On("DeletePerson", mock.Anything, uint(9)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/person/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("person_id")
	c.SetParamValues("9")

	err := h.DeletePerson(c)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"message":"Person deleted successfully"}`, rec.Body.String())
}

func TestPersonHandler_ListPersonShifts_DateRangeForwarded(t *testing.T) {
	svc := new(MockPersonService)
	h := NewPersonHandler(svc)
	e := newTestEcho()

	svc.On("ListShiftsForPerson", mock.Anything, uint(4),
		mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
		}),
		"start_time", "asc",
	).Return([]model.ShiftWithPerson{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/person/4/shift?start_date=2024-01-01&end_date=2024-06-30&sort_by=start_time&order_type=asc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("person_id")
	c.SetParamValues("4")

	err := h.ListPersonShifts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
