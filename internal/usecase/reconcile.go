package usecase

import (
	"context"
	"log/slog"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// ReconcileProducts は関連度順のIDを商品レコードに戻す。
// まとめて1回で取得してから、元のID順に並べ直す（DBの並びで順位を崩さない）。
// DBに無いIDは飛ばし、重複IDは最初の位置だけ残す。
func ReconcileProducts(ctx context.Context, orderedIDs []string, products repo.ProductRepository, log *logger.Logger) ([]model.Product, error) {
	out := make([]model.Product, 0, len(orderedIDs))
	if len(orderedIDs) == 0 {
		return out, nil
	}

	found, err := products.FindByIDs(ctx, orderedIDs)
	if err != nil {
		return nil, err
	}

	emitted := make(map[string]struct{}, len(found))
	for _, id := range orderedIDs {
		if _, dup := emitted[id]; dup {
			continue
		}
		p, ok := found[id]
		if !ok {
			log.WithContext(ctx).Debug("reconcile: product missing locally", slog.String("product_id", id))
			continue
		}
		emitted[id] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
