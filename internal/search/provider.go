// Package search は「検索語 → 関連度順の商品ID」を解決する Search Provider。
// 実装（local / remote）は起動時に一度だけ選び、呼び出し側は分岐しない。
package search

import (
	"context"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/retail"
	"storefront/internal/logger"
	"storefront/internal/repository"
)

type Provider interface {
	Resolve(ctx context.Context, query string) (model.SearchResult, error)
}

// New は設定に従って Provider を作る
func New(ctx context.Context, cfg config.SearchConfig, products repository.ProductRepository, log *logger.Logger) (Provider, error) {
	switch cfg.Backend {
	case config.SearchBackendLocal:
		return NewLocal(products), nil
	case config.SearchBackendRetail:
		client, err := retail.NewDefault(ctx, cfg.Endpoint, cfg.Placement, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return NewRemote(client, cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown search backend: %s", cfg.Backend)
	}
}
