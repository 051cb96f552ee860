package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"penulis/internal/handler"
)

// Router owns the echo instance and route registration.
type Router struct {
	echo *echo.Echo
}

func NewRouter(articles *handler.ArticleHandler) *Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	articles.RegisterRoutes(api)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	return &Router{echo: e}
}

// Echo exposes the underlying instance for tests.
func (r *Router) Echo() *echo.Echo {
	return r.echo
}

// Start blocks serving HTTP on addr until Shutdown is called.
func (r *Router) Start(addr string) error {
	return r.echo.Start(addr)
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
