package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_AssignsID(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "ok")
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	id := rec.Header().Get(requestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "ok")
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "client-supplied")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, "client-supplied", rec.Header().Get(requestIDHeader))
}

func TestRouter_HealthCheck(t *testing.T) {
	r := NewRouter(nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.Echo().ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
