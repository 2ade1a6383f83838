package usecase

import (
	"context"
	"log/slog"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// カート明細を商品と突き合わせてサマリを作る（カート表示とチェックアウトで共通）。
// 商品はまとめて1回で取得し、DBに無い商品は黙って飛ばす。
func summarizeCart(ctx context.Context, cart model.Cart, products repo.ProductRepository, log *logger.Logger) (model.OrderSummary, error) {
	summary := model.NewOrderSummary()
	if cart.IsEmpty() {
		return summary, nil
	}

	found, err := products.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return model.OrderSummary{}, err
	}

	for _, it := range cart.Items() {
		p, ok := found[it.ProductID]
		if !ok {
			log.WithContext(ctx).Debug("cart: stale product skipped", slog.String("product_id", it.ProductID))
			continue
		}
		summary.AddLine(p, it.Quantity)
	}
	return summary, nil
}
