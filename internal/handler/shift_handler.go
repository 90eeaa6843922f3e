package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/pagination"
	"shiftbook/internal/service"
)

// ShiftHandler handles shift endpoints.
type ShiftHandler struct {
	shiftService service.ShiftService
}

// NewShiftHandler creates a new shift handler.
func NewShiftHandler(shiftService service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// ShiftInput is the request body for creating and updating a shift. The
// endpoint echoes it back on success.
type ShiftInput struct {
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	PersonID  uint    `json:"person_id" validate:"required"`
	Comment   *string `json:"comment"`
}

// CreateShift godoc
// @Summary Create a shift for a person
// @Tags shift
// @Accept json
// @Produce json
// @Param shift body ShiftInput true "Shift payload"
// @Success 200 {object} ShiftInput
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /shift [post]
func (h *ShiftHandler) CreateShift(c echo.Context) error {
	var in ShiftInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	startTime, err := parseTimestamp(in.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	endTime, err := parseTimestamp(in.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	shift := &model.Shift{
		StartTime: startTime,
		EndTime:   endTime,
		Comment:   in.Comment,
		PersonID:  in.PersonID,
	}
	if err := h.shiftService.CreateShift(c.Request().Context(), shift); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, in)
}

// ListShifts godoc
// @Summary List shifts joined with person names
// @Tags shift
// @Produce json
// @Param search_string query string false "Person name search"
// @Param start_date query string false "Inclusive lower bound on shift start date"
// @Param end_date query string false "Inclusive upper bound on shift start date"
// @Param sort_by query string false "first_name or start_time"
// @Param order_type query string false "asc or desc"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.Page[model.ShiftWithPerson]
// @Failure 400 {object} errors.ErrorResponse
// @Router /shift [get]
func (h *ShiftHandler) ListShifts(c echo.Context) error {
	startDate, err := dateQueryParam(c, "start_date")
	if err != nil {
		return err
	}
	endDate, err := dateQueryParam(c, "end_date")
	if err != nil {
		return err
	}

	shifts, err := h.shiftService.ListShifts(
		c.Request().Context(),
		c.QueryParam("search_string"),
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

// GetShift godoc
// @Summary Get a shift joined with its person by id
// @Tags shift
// @Produce json
// @Param shift_id path int true "Shift ID"
// @Success 200 {object} model.ShiftWithPerson
// @Failure 404 {object} errors.ErrorResponse
// @Router /shift/{shift_id} [get]
func (h *ShiftHandler) GetShift(c echo.Context) error {
	id, err := idParam(c, "shift_id")
	if err != nil {
		return err
	}

	shift, err := h.shiftService.GetShift(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, shift)
}

// UpdateShift godoc
// @Summary Update a shift
// @Tags shift
// @Accept json
// @Produce json
// @Param shift_id path int true "Shift ID"
// @Param shift body ShiftInput true "Shift payload"
// @Success 200 {object} ShiftInput
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /shift/{shift_id} [put]
func (h *ShiftHandler) UpdateShift(c echo.Context) error {
	id, err := idParam(c, "shift_id")
	if err != nil {
		return err
	}

	var in ShiftInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	startTime, err := parseTimestamp(in.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}
	endTime, err := parseTimestamp(in.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	if err := h.shiftService.UpdateShift(c.Request().Context(), id, startTime, endTime, in.Comment); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, in)
}

// DeleteShift godoc
// @Summary Delete a shift
// @Tags shift
// @Produce json
// @Param shift_id path int true "Shift ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /shift/{shift_id} [delete]
func (h *ShiftHandler) DeleteShift(c echo.Context) error {
	id, err := idParam(c, "shift_id")
	if err != nil {
		return err
	}

	if err := h.shiftService.DeleteShift(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Shift deleted successfully"})
}
