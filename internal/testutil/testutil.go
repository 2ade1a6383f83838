// Package testutil はテスト用のDBと商品データ。
package testutil

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite はインメモリSQLiteを作ってmigrateする。
// :memory: は接続ごとに別DBになるので接続は1本に絞る。
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func Product(id, title string, price float64, currency string) model.Product {
	return model.Product{
		ID:           id,
		Title:        title,
		Category:     "Tops",
		Price:        price,
		CurrencyCode: currency,
		ImageURL:     "https://example.com/" + id + ".jpg",
		Availability: model.AvailabilityInStock,
	}
}

// Seed は順番どおりに1件ずつ入れる（挿入順を固定するため）
func Seed(t testing.TB, gdb *gorm.DB, products ...model.Product) {
	t.Helper()
	for _, p := range products {
		p := p
		require.NoError(t, gdb.WithContext(context.Background()).Create(&p).Error)
	}
}
