package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck は名前付きの疎通確認。登録順に実行する。
type HealthCheck struct {
	Name   string
	Pinger Pinger
}

// DBとカートストアの疎通確認
type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.health)
}

// 最初に失敗したチェック名を返す
func (h *HealthHandler) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	for _, hc := range h.checks {
		if err := hc.Pinger.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"check":  hc.Name,
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
