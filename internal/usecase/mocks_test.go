package usecase_test

import (
	"context"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).(map[string]model.Product)
	return found, args.Error(1)
}

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) SearchByTitle(ctx context.Context, q string) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) InsertIgnoreDuplicates(ctx context.Context, products []model.Product) (int64, error) {
	panic("not used in usecase tests")
}

func (m *ProductRepoMock) Ping(ctx context.Context) error {
	return nil
}

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) Resolve(ctx context.Context, query string) (model.SearchResult, error) {
	args := m.Called(ctx, query)
	r, _ := args.Get(0).(model.SearchResult)
	return r, args.Error(1)
}

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Load(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartStoreMock) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *CartStoreMock) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *CartStoreMock) Ping(ctx context.Context) error {
	return nil
}

func ranked(ids ...string) model.SearchResult {
	out := model.EmptySearchResult()
	for i, id := range ids {
		out.Results = append(out.Results, model.RankedID{ProductID: id, Rank: i + 1})
	}
	return out
}

func productIDs(items []model.Product) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}
