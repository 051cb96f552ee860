package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"penulis/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service errors onto HTTP responses. Anything that
// is not a validation or lookup failure is reported as an opaque internal
// error; detail stays in the server logs.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
