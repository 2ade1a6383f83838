package handler

import (
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const cartPath = "/cart"

// カートのHTTP。更新系はエラーでも必ず /cart へリダイレクトする。
type CartHandler struct {
	uc  *usecase.CartUsecase
	log *logger.Logger
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(cartPath, h.getCart)
	e.POST("/add_to_cart", h.addToCart)
	e.POST("/update_cart", h.updateCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	sid, ok := middleware.SessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	sid, _ := middleware.SessionID(c)

	err := h.uc.AddToCart(c.Request().Context(), sid, usecase.AddCartInput{
		ProductID: c.FormValue("product_id"),
		Quantity:  c.FormValue("quantity"),
	})
	h.logSwallowed(c, err)

	return c.Redirect(http.StatusSeeOther, cartPath)
}

func (h *CartHandler) updateCart(c echo.Context) error {
	sid, _ := middleware.SessionID(c)

	err := h.uc.UpdateCartItem(c.Request().Context(), sid, usecase.UpdateCartItemInput{
		ProductID: c.FormValue("product_id"),
		Action:    c.FormValue("action"),
		Quantity:  c.FormValue("quantity"),
	})
	h.logSwallowed(c, err)

	return c.Redirect(http.StatusSeeOther, cartPath)
}

// リダイレクトで握りつぶすエラーはログだけ残す
func (h *CartHandler) logSwallowed(c echo.Context, err error) {
	if err == nil {
		return
	}
	l := h.log.WithContext(c.Request().Context())
	if he, ok := usecase.AsHTTPError(err); ok && he.Status < http.StatusInternalServerError {
		l.Debug("cart input ignored", "path", c.Path(), "reason", he.Message)
		return
	}
	l.HTTPError(c.Request().Method, c.Path(), http.StatusSeeOther, err, c.RealIP())
}
