package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/config"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		GoEnv: "test",
		Database: config.DatabaseConfig{
			Driver:     config.DBDriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "shop.db"),
		},
	}
}

func countProducts(t *testing.T, cfg config.Config) int {
	t.Helper()
	gdb, err := db.Connect(cfg.Database, false)
	require.NoError(t, err)
	defer func() { _ = db.Close(gdb) }()

	all, err := infraRepo.NewProductGormRepository(gdb).ListAll(context.Background())
	require.NoError(t, err)
	return len(all)
}

func TestRun_ImportsFile(t *testing.T) {
	cfg := testConfig(t)
	file := filepath.Join(t.TempDir(), "products.jsonl")
	require.NoError(t, os.WriteFile(file, []byte(
		`{"id":"p1","title":"Shirt"}`+"\n"+`{"id":"p2","title":"Hat"}`+"\n"+`{"id":"p1","title":"Dup"}`+"\n",
	), 0o644))

	require.NoError(t, run(context.Background(), cfg, logger.Discard(), file, false))
	assert.Equal(t, 2, countProducts(t, cfg))
}

func TestRun_Demo(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, run(context.Background(), cfg, logger.Discard(), "", true))
	require.NoError(t, run(context.Background(), cfg, logger.Discard(), "", true))
	assert.Equal(t, 5, countProducts(t, cfg))
}

// ファイルが無いときはエラーを返す（プロセスは終了させない）
func TestRun_MissingFileReturnsError(t *testing.T) {
	cfg := testConfig(t)

	err := run(context.Background(), cfg, logger.Discard(), filepath.Join(t.TempDir(), "nope.jsonl"), false)
	assert.ErrorContains(t, err, "open catalog file")

	// DBは閉じられていて再度開ける
	assert.Equal(t, 0, countProducts(t, cfg))
}
