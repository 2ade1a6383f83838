package search

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// Local はDBのタイトル部分一致で検索する。順位はDBの返却順、tokenは無し。
type Local struct {
	products repository.ProductRepository
}

func NewLocal(products repository.ProductRepository) *Local {
	return &Local{products: products}
}

func (p *Local) Resolve(ctx context.Context, query string) (model.SearchResult, error) {
	found, err := p.products.SearchByTitle(ctx, query)
	if err != nil {
		return model.SearchResult{}, err
	}

	out := model.EmptySearchResult()
	for i, prod := range found {
		out.Results = append(out.Results, model.RankedID{ProductID: prod.ID, Rank: i + 1})
	}
	return out, nil
}
