package server

import (
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Health  *handler.HealthHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Health.RegisterRoutes(e)
}
