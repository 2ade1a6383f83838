package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// セッションID → カートの保存先。リクエストごとに読んで書き戻す。
type CartSessionStore interface {
	// 無ければ空のカート
	Load(ctx context.Context, sessionID string) (model.Cart, error)
	// 空のカートは削除と同じ
	Save(ctx context.Context, sessionID string, cart model.Cart) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
