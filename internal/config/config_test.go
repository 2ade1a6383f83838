package config_test

import (
	"testing"
	"time"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 関係する環境変数を空にする（t.Setenvで元に戻る）
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GO_ENV", "DB_DRIVER", "DATABASE_URL", "SQLITE_PATH", "POSTGRES_PORT",
		"SESSION_SECRET", "SESSION_COOKIE", "SESSION_TTL", "SESSION_SECURE",
		"SEARCH_BACKEND", "RETAIL_PLACEMENT", "RETAIL_VISITOR_ID", "RETAIL_PAGE_SIZE", "RETAIL_ENDPOINT",
		"REDIS_URL", "CATALOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, config.DBDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "ecommerce.db", cfg.Database.SQLitePath)
	assert.Equal(t, "super_secret_key_for_demo", cfg.Session.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, config.SearchBackendLocal, cfg.Search.Backend)
	assert.Equal(t, "visitor-12345", cfg.Search.VisitorID)
	assert.Equal(t, 10, cfg.Search.PageSize)
	assert.Equal(t, "products_data.jsonl", cfg.CatalogFile)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")

	_, err := config.FromEnv()
	assert.ErrorContains(t, err, "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", "s3cret")
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromEnv_RetailRequiresPlacement(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEARCH_BACKEND", "retail")

	_, err := config.FromEnv()
	assert.ErrorContains(t, err, "RETAIL_PLACEMENT")

	t.Setenv("RETAIL_PLACEMENT", "projects/p/servingConfigs/default")
	t.Setenv("RETAIL_PAGE_SIZE", "5")
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.PageSize)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"driver":    {"DB_DRIVER", "mysql"},
		"backend":   {"SEARCH_BACKEND", "solr"},
		"page size": {"RETAIL_PAGE_SIZE", "ten"},
		"zero page": {"RETAIL_PAGE_SIZE", "0"},
		"ttl":       {"SESSION_TTL", "forever"},
		"pg port":   {"POSTGRES_PORT", "abc"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	assert.Equal(t, ":9090", config.Config{Port: "9090"}.Addr())
	assert.Equal(t, ":9090", config.Config{Port: ":9090"}.Addr())
}
