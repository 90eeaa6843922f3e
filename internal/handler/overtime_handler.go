package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shiftbook/internal/errors"
	"shiftbook/internal/model"
	"shiftbook/internal/pagination"
	"shiftbook/internal/service"
)

// OvertimeHandler handles overtime endpoints.
type OvertimeHandler struct {
	overtimeService service.OvertimeService
}

// NewOvertimeHandler creates a new overtime handler.
func NewOvertimeHandler(overtimeService service.OvertimeService) *OvertimeHandler {
	return &OvertimeHandler{overtimeService: overtimeService}
}

// OvertimeInput is the request body for creating overtime. The endpoint
// echoes it back on success.
type OvertimeInput struct {
	Type    string `json:"type" validate:"required"`
	Hours   int    `json:"hours"`
	ShiftID uint   `json:"shift_id" validate:"required"`
}

// CreateOvertime godoc
// @Summary Create overtime for a shift
// @Tags overtime
// @Accept json
// @Produce json
// @Param overtime body OvertimeInput true "Overtime payload"
// @Success 200 {object} OvertimeInput
// @Failure 422 {object} errors.ErrorResponse
// @Router /overtime [post]
func (h *OvertimeHandler) CreateOvertime(c echo.Context) error {
	var in OvertimeInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	overtime := &model.Overtime{
		ShiftID: in.ShiftID,
		Type:    in.Type,
		Hours:   in.Hours,
	}
	if err := h.overtimeService.CreateOvertime(c.Request().Context(), overtime); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, in)
}

// ListOvertimes godoc
// @Summary List all overtime records
// @Tags overtime
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} pagination.Page[model.Overtime]
// @Router /overtime [get]
func (h *OvertimeHandler) ListOvertimes(c echo.Context) error {
	overtimes, err := h.overtimeService.ListOvertimes(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	page, size := pageParams(c)
	return c.JSON(http.StatusOK, pagination.Paginate(overtimes, page, size))
}

// GetOvertimesForShift godoc
// @Summary List overtime for one shift
// @Tags overtime
// @Produce json
// @Param shift_id path int true "Shift ID"
// @Success 200 {array} model.Overtime
// @Failure 404 {object} errors.ErrorResponse
// @Router /overtime/{shift_id} [get]
func (h *OvertimeHandler) GetOvertimesForShift(c echo.Context) error {
	id, err := idParam(c, "shift_id")
	if err != nil {
		return err
	}

	overtimes, err := h.overtimeService.GetOvertimesForShift(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, overtimes)
}
