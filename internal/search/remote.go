package search

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/retail"
	"storefront/internal/logger"
)

// Ranker は外部ランキングサービス
type Ranker interface {
	Search(ctx context.Context, in retail.SearchRequest) (retail.SearchResponse, error)
}

// Remote は外部サービスに検索を任せる。
// 障害時（通信・認証・不正レスポンス・panic）は空の結果を返し、エラーは返さない。
type Remote struct {
	ranker    Ranker
	visitorID string
	pageSize  int
	log       *logger.Logger
}

func NewRemote(ranker Ranker, cfg config.SearchConfig, log *logger.Logger) *Remote {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	return &Remote{
		ranker:    ranker,
		visitorID: cfg.VisitorID,
		pageSize:  pageSize,
		log:       log,
	}
}

func (p *Remote) Resolve(ctx context.Context, query string) (model.SearchResult, error) {
	resp, err := p.search(ctx, query)
	if err != nil {
		p.log.WithContext(ctx).SearchFallback(query, err)
		return model.EmptySearchResult(), nil
	}

	out := model.EmptySearchResult()
	out.AttributionToken = resp.AttributionToken
	for _, id := range resp.IDs() {
		if len(out.Results) == p.pageSize {
			break
		}
		if id == "" {
			continue
		}
		out.Results = append(out.Results, model.RankedID{ProductID: id, Rank: len(out.Results) + 1})
	}

	p.log.WithContext(ctx).Debug("search: ranked results",
		slog.String("query", query),
		slog.Int("returned", len(out.Results)),
		slog.Int("total_size", resp.TotalSize),
	)
	return out, nil
}

func (p *Remote) search(ctx context.Context, query string) (resp retail.SearchResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ranker panic: %v", r)
		}
	}()

	return p.ranker.Search(ctx, retail.SearchRequest{
		Query:     query,
		VisitorID: p.visitorID,
		PageSize:  p.pageSize,
	})
}
