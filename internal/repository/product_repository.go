package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の読み取り（Catalog Store）。アプリからは読み取り専用で、書き込みはbootstrapのみ。
type ProductRepository interface {
	// 無いID・空IDは ErrNotFound
	FindByID(ctx context.Context, id string) (model.Product, error)
	// 見つかったものだけを id→Product で返す（順序なし）
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error)
	// 全件（挿入順）
	ListAll(ctx context.Context) ([]model.Product, error)
	// タイトルの部分一致（大文字小文字を区別しない）
	SearchByTitle(ctx context.Context, q string) ([]model.Product, error)

	// bootstrap用。既存IDはスキップして、追加できた件数を返す
	InsertIgnoreDuplicates(ctx context.Context, products []model.Product) (int64, error)
	Ping(ctx context.Context) error
}
