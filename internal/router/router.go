package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shiftbook/internal/config"
	"shiftbook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	personHandler *handler.PersonHandler,
	shiftHandler *handler.ShiftHandler,
	overtimeHandler *handler.OvertimeHandler,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(RequestLogger(log))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = ErrorHandler(log)

	// Liveness probe, outside the API-key gate.
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := APIKeyAuth(cfg.APIKey)

	person := e.Group("/person", auth)
	person.POST("", personHandler.CreatePerson)
	person.GET("", personHandler.ListPersons)
	person.GET("/:person_id", personHandler.GetPerson)
	person.PUT("/:person_id", personHandler.UpdatePerson)
	person.DELETE("/:person_id", personHandler.DeletePerson)
	person.GET("/:person_id/shift", personHandler.ListPersonShifts)

	shift := e.Group("/shift", auth)
	shift.POST("", shiftHandler.CreateShift)
	shift.GET("", shiftHandler.ListShifts)
	shift.GET("/:shift_id", shiftHandler.GetShift)
	shift.PUT("/:shift_id", shiftHandler.UpdateShift)
	shift.DELETE("/:shift_id", shiftHandler.DeleteShift)

	overtime := e.Group("/overtime", auth)
	overtime.POST("", overtimeHandler.CreateOvertime)
	overtime.GET("", overtimeHandler.ListOvertimes)
	overtime.GET("/:shift_id", overtimeHandler.GetOvertimesForShift)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
