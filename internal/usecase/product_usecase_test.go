package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/retail"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
	"storefront/internal/search"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// ListProducts
// =====================

func TestProductUsecase_ListProducts_EmptyQueryListsAll(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	sp := new(ProviderMock)
	pr.On("ListAll", ctx).Return([]model.Product{{ID: "p1"}, {ID: "p2"}}, nil).Once()

	uc := usecase.NewProductUsecase(pr, sp, validator.New(), logger.Discard())
	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Q: "   "})
	require.NoError(t, err)

	assert.Equal(t, "", out.Query)
	assert.Equal(t, []string{"p1", "p2"}, productIDs(out.Items))
	sp.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestProductUsecase_ListProducts_SearchThenReconcile(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	sp := new(ProviderMock)

	res := ranked("c", "a", "b")
	res.AttributionToken = "tok"
	sp.On("Resolve", ctx, "shirt").Return(res, nil).Once()
	pr.On("FindByIDs", ctx, []string{"c", "a", "b"}).Return(map[string]model.Product{
		"a": {ID: "a"}, "b": {ID: "b"}, "c": {ID: "c"},
	}, nil).Once()

	uc := usecase.NewProductUsecase(pr, sp, validator.New(), logger.Discard())
	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Q: " shirt "})
	require.NoError(t, err)

	assert.Equal(t, "shirt", out.Query)
	assert.Equal(t, []string{"c", "a", "b"}, productIDs(out.Items))
	assert.Equal(t, "tok", out.AttributionToken)
	pr.AssertExpectations(t)
	sp.AssertExpectations(t)
}

// 外部サービスが落ちていても空の一覧で成功する
func TestProductUsecase_ListProducts_RemoteFaultIsEmpty(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)

	srv := failingRanker{}
	provider := search.NewRemote(srv, config.SearchConfig{VisitorID: "v", PageSize: 10}, logger.Discard())

	uc := usecase.NewProductUsecase(pr, provider, validator.New(), logger.Discard())
	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Q: "shirt"})
	require.NoError(t, err)

	assert.Empty(t, out.Items)
	pr.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestProductUsecase_ListProducts_LocalSearchError(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	sp := new(ProviderMock)
	sp.On("Resolve", ctx, "x").Return(model.SearchResult{}, errors.New("db down")).Once()

	uc := usecase.NewProductUsecase(pr, sp, validator.New(), logger.Discard())
	_, err := uc.ListProducts(ctx, usecase.ListProductsInput{Q: "x"})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestProductUsecase_ListProducts_QueryTooLong(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), new(ProviderMock), validator.New(), logger.Discard())

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Q: strings.Repeat("a", 501)})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// 上限は文字数で数える（マルチバイトでも500文字までは通す）
func TestProductUsecase_ListProducts_QueryLimitCountsRunes(t *testing.T) {
	ctx := context.Background()
	q := strings.Repeat("シ", 500)
	sp := new(ProviderMock)
	sp.On("Resolve", ctx, q).Return(model.EmptySearchResult(), nil).Once()

	uc := usecase.NewProductUsecase(new(ProductRepoMock), sp, validator.New(), logger.Discard())
	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Q: q})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	sp.AssertExpectations(t)
}

// =====================
// GetProductDetail
// =====================

func TestProductUsecase_GetProductDetail(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	pr.On("FindByID", ctx, "p1").Return(model.Product{ID: "p1", Title: "Shirt"}, nil).Once()

	uc := usecase.NewProductUsecase(pr, new(ProviderMock), validator.New(), logger.Discard())
	p, err := uc.GetProductDetail(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Shirt", p.Title)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	pr.On("FindByID", ctx, "nope").Return(model.Product{}, repo.ErrNotFound).Once()

	uc := usecase.NewProductUsecase(pr, new(ProviderMock), validator.New(), logger.Discard())
	_, err := uc.GetProductDetail(ctx, "nope")

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Product not found", he.Message)
}

func TestProductUsecase_GetProductDetail_DBError(t *testing.T) {
	ctx := context.Background()
	pr := new(ProductRepoMock)
	pr.On("FindByID", ctx, "p1").Return(model.Product{}, errors.New("db down")).Once()

	uc := usecase.NewProductUsecase(pr, new(ProviderMock), validator.New(), logger.Discard())
	_, err := uc.GetProductDetail(ctx, "p1")

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

type failingRanker struct{}

func (failingRanker) Search(ctx context.Context, in retail.SearchRequest) (retail.SearchResponse, error) {
	return retail.SearchResponse{}, errors.New("unavailable")
}
