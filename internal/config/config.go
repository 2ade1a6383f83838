package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	SearchBackendLocal  = "local"
	SearchBackendRetail = "retail"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（:8000）
	GoEnv string // development/production

	Database DatabaseConfig
	Session  SessionConfig
	Search   SearchConfig

	RedisURL    string // 空ならカートはプロセス内メモリ
	CatalogFile string // cmd/import の既定入力
}

// DB接続設定
type DatabaseConfig struct {
	Driver      string // sqlite / postgres
	DatabaseURL string // postgres DSN（最優先）

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SQLitePath string
}

// セッションcookie設定
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// 検索プロバイダ設定。起動時に一度だけ読んで各コンストラクタへ渡す。
type SearchConfig struct {
	Backend         string // local / retail
	Endpoint        string
	Placement       string
	VisitorID       string
	PageSize        int
	CredentialsFile string
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.GoEnv, "development")
}

// Addr は ":8000" 形式で返す
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Loadは .env（あれば）と環境変数から読む
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv は環境変数だけから組み立てる
func FromEnv() (Config, error) {
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	pageSize, err := atoiOr("RETAIL_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, err
	}
	ttl, err := durationOr("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8000"),
		GoEnv: getenv("GO_ENV", "development"),

		Database: DatabaseConfig{
			Driver:      strings.ToLower(getenv("DB_DRIVER", DBDriverSQLite)),
			DatabaseURL: os.Getenv("DATABASE_URL"),

			PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
			PostgresPort:     pgPort,
			PostgresUser:     getenv("POSTGRES_USER", "postgres"),
			PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
			PostgresDB:       getenv("POSTGRES_DB", "app"),
			PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

			SQLitePath: getenv("SQLITE_PATH", "ecommerce.db"),
		},

		Session: SessionConfig{
			Secret:     os.Getenv("SESSION_SECRET"),
			CookieName: getenv("SESSION_COOKIE", "session"),
			TTL:        ttl,
			Secure:     os.Getenv("SESSION_SECURE") == "true",
		},

		Search: SearchConfig{
			Backend:         strings.ToLower(getenv("SEARCH_BACKEND", SearchBackendLocal)),
			Endpoint:        getenv("RETAIL_ENDPOINT", "https://retail.googleapis.com/v2"),
			Placement:       os.Getenv("RETAIL_PLACEMENT"),
			VisitorID:       getenv("RETAIL_VISITOR_ID", "visitor-12345"),
			PageSize:        pageSize,
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},

		RedisURL:    os.Getenv("REDIS_URL"),
		CatalogFile: getenv("CATALOG_FILE", "products_data.jsonl"),
	}

	//開発環境だけデモ用シークレットを許す
	if cfg.Session.Secret == "" && cfg.IsDevelopment() {
		cfg.Session.Secret = "super_secret_key_for_demo"
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	//必須チェック
	switch c.Database.Driver {
	case DBDriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case DBDriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q", DBDriverSQLite, DBDriverPostgres)
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	switch c.Search.Backend {
	case SearchBackendLocal:
	case SearchBackendRetail:
		if c.Search.Placement == "" {
			return fmt.Errorf("RETAIL_PLACEMENT is required")
		}
		if c.Search.VisitorID == "" {
			return fmt.Errorf("RETAIL_VISITOR_ID is required")
		}
	default:
		return fmt.Errorf("SEARCH_BACKEND must be %q or %q", SearchBackendLocal, SearchBackendRetail)
	}
	if c.Search.PageSize < 1 {
		return fmt.Errorf("RETAIL_PAGE_SIZE must be >= 1")
	}

	return nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
