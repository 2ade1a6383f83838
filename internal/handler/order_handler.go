package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 購入完了。何度呼んでもよい（2回目以降は空のサマリ）
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/complete", h.complete)
	e.POST("/complete", h.complete)
}

func (h *OrderHandler) complete(c echo.Context) error {
	sid, ok := middleware.SessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	out, err := h.uc.Complete(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
