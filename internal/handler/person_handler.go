package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/pagination"
	"shiftbook/internal/service"
)

// PersonHandler handles person endpoints.
type PersonHandler struct {
	personService service.PersonService
}

// NewPersonHandler creates a new person handler.
func NewPersonHandler(personService service.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// PersonInput is the request body for creating and updating a person. The
// endpoint echoes it back on success.
type PersonInput struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	JobRole   *string `json:"job_role"`
	Birthday  *string `json:"birthday"`
}

// MessageResponse is the body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatePerson godoc
// @Summary Create a person
// @Tags person
// @Accept json
// @Produce json
// @Param person body PersonInput true "Person payload"
// @Success 200 {object} PersonInput
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /person [post]
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var in PersonInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	birthday, err := parseOptionalTimestamp(in.Birthday)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	person := &model.Person{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		JobRole:   in.JobRole,
		Birthday:  birthday,
	}
	if _, err := h.personService.CreatePerson(c.Request().Context(), person); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, in)
}

// GetPerson godoc
// @Summary Get a person by id
// @Tags person
// @Produce json
// @Param person_id path int true "Person ID"
// @Success 200 {object} model.Person
// @Failure 404 {object} errors.ErrorResponse
// @Router /person/{person_id} [get]
func (h *PersonHandler) GetPerson(c echo.Context) error {
	id, err := idParam(c, "person_id")
	if err != nil {
		return err
	}

	person, err := h.personService.GetPerson(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, person)
}

// ListPersons godoc
// @Summary List persons with optional name search and sorting
// @Tags person
// @Produce json
// @Param search_string query string false "Name search, 'first last' when it contains a space"
// @Param sort_by query string false "first_name or last_name"
// @Param order_type query string false "asc or desc"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.Page[model.Person]
// @Failure 400 {object} errors.ErrorResponse
// @Router /person [get]
func (h *PersonHandler) ListPersons(c echo.Context) error {
	persons, err := h.personService.ListPersons(
		c.Request().Context(),
		c.QueryParam("search_string"),
		c.QueryParam("sort_by"),
		c.QueryParam("order_type"),
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	page, size := pageParams(c)
	return c.JSON(http.StatusOK, pagination.Paginate(persons, page, size))
}

// UpdatePerson godoc
// @Summary Update a person
// @Tags person
// @Accept json
// @Produce json
// @Param person_id path int true "Person ID"
// @Param person body PersonInput true "Person payload"
// @Success 200 {object} PersonInput
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /person/{person_id} [put]
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	id, err := idParam(c, "person_id")
	if err != nil {
		return err
	}

	var in PersonInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	birthday, err := parseOptionalTimestamp(in.Birthday)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	if err := h.personService.UpdatePerson(c.Request().Context(), id, in.FirstName, in.LastName, in.JobRole, birthday); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, in)
}

// DeletePerson godoc
// @Summary Delete a person and all owned shifts
// @Tags person
// @Produce json
// @Param person_id path int true "Person ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /person/{person_id} [delete]
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	id, err := idParam(c, "person_id")
	if err != nil {
		return err
	}

	if err := h.personService.DeletePerson(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Person deleted successfully"})
}

// ListPersonShifts godoc
// @Summary List shifts for one person
// @Tags person
// @Produce json
// @Param person_id path int true "Person ID"
// @Param start_date query string false "Inclusive lower bound on shift start date"
// @Param end_date query string false "Inclusive upper bound on shift start date"
// @Param sort_by query string false "start_time"
// @Param order_type query string false "asc or desc"
// @Success 200 {object} pagination.Page[model.ShiftWithPerson]
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /person/{person_id}/shift [get]
func (h *PersonHandler) ListPersonShifts(c echo.Context) error {
	id, err := idParam(c, "person_id")
	if err != nil {
		return err
	}
	startDate, err := dateQueryParam(c, "start_date")
	if err != nil {
		return err
	}
	endDate, err := dateQueryParam(c, "end_date")
	if err != nil {
		return err
	}

	shifts, err := h.personService.ListShiftsForPerson(
		c.Request().Context(),
		id,
		startDate,
		endDate,
		c.QueryParam("sort_by"),
		c.QueryParam("order_type"),
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	page, size := pageParams(c)
	return c.JSON(http.StatusOK, pagination.Paginate(shifts, page, size))
}
