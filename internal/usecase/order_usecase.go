package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// OrderUsecase はチェックアウト。注文は保存しない。
type OrderUsecase struct {
	carts       repo.CartSessionStore
	productRepo repo.ProductRepository
	log         *logger.Logger
}

func NewOrderUsecase(carts repo.CartSessionStore, productRepo repo.ProductRepository, log *logger.Logger) *OrderUsecase {
	return &OrderUsecase{
		carts:       carts,
		productRepo: productRepo,
		log:         log,
	}
}

// Complete はカートからサマリを作り、カートを空にする。
// 空のカートでも全部の商品が消えていても必ずクリアするので、2回目以降は空のサマリになる。
func (u *OrderUsecase) Complete(ctx context.Context, sessionID string) (model.OrderSummary, error) {
	if sessionID == "" {
		return model.OrderSummary{}, NewHTTPError(http.StatusBadRequest, "no session")
	}

	summary := model.NewOrderSummary()
	cart, loadErr := u.carts.Load(ctx, sessionID)

	var sumErr error
	if loadErr == nil {
		summary, sumErr = summarizeCart(ctx, cart, u.productRepo, u.log)
	}

	//カートをクリア（結果に関係なく）
	if err := u.carts.Delete(ctx, sessionID); err != nil {
		u.log.WithContext(ctx).Error("cart clear failed", slog.String("error", err.Error()))
		return model.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	if loadErr != nil {
		u.log.WithContext(ctx).Error("cart load failed", slog.String("error", loadErr.Error()))
		return model.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	if sumErr != nil {
		u.log.DatabaseError("checkout.summarize", sumErr)
		return model.OrderSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.WithContext(ctx).Info("checkout completed",
		slog.Int("items", len(summary.Items)),
		slog.Float64("total_price", summary.GrandTotal),
		slog.String("currency_code", summary.CurrencyCode),
	)
	return summary, nil
}
