package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, repo.ErrNotFound
	}

	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

// 複数IDを1回のクエリで取得。並び替えは呼び出し側。
func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	out := make(map[string]model.Product, len(ids))

	uniq := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	if len(uniq) == 0 {
		return out, nil
	}

	var products []model.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", uniq).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

// 全件。ORDER BYは付けない（挿入順、DB依存）
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return []model.Product{}, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// タイトルの部分一致。LOWER()で大文字小文字を無視、%と_はエスケープする。
func (r *ProductGormRepository) SearchByTitle(ctx context.Context, q string) ([]model.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return r.ListAll(ctx)
	}

	like := "%" + escapeLike(strings.ToLower(q)) + "%"

	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE ? ESCAPE '\'`, like).
		Find(&products).Error; err != nil {
		return []model.Product{}, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// 既存IDは ON CONFLICT DO NOTHING で捨てる（先勝ち）
func (r *ProductGormRepository) InsertIgnoreDuplicates(ctx context.Context, products []model.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&products, insertBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("insert products: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ProductGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
