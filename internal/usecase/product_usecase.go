package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
	"storefront/internal/search"
	"storefront/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 検索語の上限（文字数）
const maxQueryLen = 500

type ProductUsecase struct {
	productRepo repo.ProductRepository
	search      search.Provider
	validate    *validator.Validator
	log         *logger.Logger
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	provider search.Provider,
	validate *validator.Validator,
	log *logger.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		search:      provider,
		validate:    validate,
		log:         log,
	}
}

// GET / の入力
type ListProductsInput struct {
	Q string
}

type ProductListOutput struct {
	Query            string          `json:"query"`
	Items            []model.Product `json:"items"`
	AttributionToken string          `json:"attribution_token,omitempty"`
}

// ListProducts は q が空なら全件、あれば Search Provider → Reconcile の順で返す。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	q := strings.TrimSpace(in.Q)
	if err := u.validate.Var(q, fmt.Sprintf("max=%d", maxQueryLen)); err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	if q == "" {
		items, err := u.productRepo.ListAll(ctx)
		if err != nil {
			u.log.DatabaseError("products.list", err)
			return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return ProductListOutput{Query: q, Items: items}, nil
	}

	result, err := u.search.Resolve(ctx, q)
	if err != nil {
		u.log.DatabaseError("products.search", err)
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := ReconcileProducts(ctx, result.IDs(), u.productRepo, u.log)
	if err != nil {
		u.log.DatabaseError("products.reconcile", err)
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Query:            q,
		Items:            items,
		AttributionToken: result.AttributionToken,
	}, nil
}

// 商品詳細。無ければ404。
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		u.log.DatabaseError("products.detail", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
