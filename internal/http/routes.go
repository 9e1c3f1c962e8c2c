package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "relief-coordination.com/relief-coordination/internal/http/middlewares"
)

type RouterConfig struct {
	Verifier     middleware.TokenVerifier
	Limiter      middleware.Limiter
	AllowOrigins []string
	Logger       *zap.Logger
}

func NewRouter(h *Handler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.AllowOrigins}))
	if cfg.Limiter != nil {
		e.Use(middleware.RateLimiter(cfg.Limiter, cfg.Logger))
	}

	Register(e, h, cfg.Verifier)
	return e
}

func Register(e *echo.Echo, h *Handler, verifier middleware.TokenVerifier) {
	e.GET("/health", Health)

	api := e.Group("/api/volunteers", middleware.Authenticate(verifier))
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.POST("/tasks", h.CreateTask, middleware.RequireAuthority())
	api.POST("/assign", h.AssignVolunteer)
	api.POST("/complete", h.CompleteTask)
	api.GET("/stats", h.Stats)
}
