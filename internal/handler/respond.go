package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffdesk/internal/errors"
)

// Envelope is the uniform response wrapper: a payload, a plain message, or both.
type Envelope struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Data: data})
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Message: message})
}

// respondError translates a service error into its transport status code and
// error body. Anything outside the taxonomy becomes a 500.
func respondError(c echo.Context, err error) error {
	typed := errors.FromError(err)
	return c.JSON(typed.Status, typed.ToErrorResponse())
}
