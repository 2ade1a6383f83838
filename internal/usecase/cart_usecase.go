package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

const (
	CartActionUpdate = "update"
	CartActionDelete = "delete"
)

// CartUsecase はセッションのカート操作。毎回 Load → 変更 → Save する。
type CartUsecase struct {
	carts       repo.CartSessionStore
	productRepo repo.ProductRepository
	validate    *validator.Validator
	log         *logger.Logger
}

func NewCartUsecase(
	carts repo.CartSessionStore,
	productRepo repo.ProductRepository,
	validate *validator.Validator,
	log *logger.Logger,
) *CartUsecase {
	return &CartUsecase{
		carts:       carts,
		productRepo: productRepo,
		validate:    validate,
		log:         log,
	}
}

// POST /add_to_cart の入力（フォーム値のまま）
type AddCartInput struct {
	ProductID string `validate:"notblank,max=255"`
	Quantity  string // 空なら1
}

// POST /update_cart の入力
type UpdateCartItemInput struct {
	ProductID string `validate:"notblank,max=255"`
	Action    string `validate:"oneof=update delete"`
	Quantity  string
}

// GetCart はカートを商品と突き合わせて返す（DBに無い商品は出さない）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (model.OrderSummary, error) {
	if sessionID == "" {
		return model.OrderSummary{}, NewHTTPError(http.StatusBadRequest, "no session")
	}

	cart, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		u.log.WithContext(ctx).Error("cart load failed", slog.String("error", err.Error()))
		return model.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	summary, err := summarizeCart(ctx, cart, u.productRepo, u.log)
	if err != nil {
		u.log.DatabaseError("cart.summarize", err)
		return model.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return summary, nil
}

// AddToCart は数量を加算する（同一商品は合算）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "no session")
	}
	if err := u.validate.Struct(in); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	qty := int64(1)
	if raw := strings.TrimSpace(in.Quantity); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			return NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		qty = n
	}

	return u.mutate(ctx, sessionID, func(cart *model.Cart) error {
		return cart.Add(strings.TrimSpace(in.ProductID), qty)
	})
}

// UpdateCartItem は数量の上書き（0以下で削除）か削除。
// 数量が数値でないときは何も変えずに成功扱いにする。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, sessionID string, in UpdateCartItemInput) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "no session")
	}
	if err := u.validate.Struct(in); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	productID := strings.TrimSpace(in.ProductID)

	return u.mutate(ctx, sessionID, func(cart *model.Cart) error {
		switch in.Action {
		case CartActionDelete:
			cart.Remove(productID)
		case CartActionUpdate:
			if err := cart.SetQuantityText(productID, in.Quantity); err != nil {
				u.log.WithContext(ctx).Debug("cart update: quantity ignored",
					slog.String("product_id", productID),
					slog.String("quantity", in.Quantity),
				)
			}
		}
		return nil
	})
}

// read-modify-write
func (u *CartUsecase) mutate(ctx context.Context, sessionID string, fn func(cart *model.Cart) error) error {
	cart, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		u.log.WithContext(ctx).Error("cart load failed", slog.String("error", err.Error()))
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}

	if err := fn(&cart); err != nil {
		if errors.Is(err, model.ErrInvalidQuantity) || errors.Is(err, model.ErrInvalidProductID) {
			return NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	if err := u.carts.Save(ctx, sessionID, cart); err != nil {
		u.log.WithContext(ctx).Error("cart save failed", slog.String("error", err.Error()))
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}
