package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles 依序載入；後者不覆寫已存在的變數
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	Port        string `env:"APP_PORT" envDefault:"8080" validate:"required,numeric"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`

	WorkerCount int    `env:"WORKER_COUNT" envDefault:"4" validate:"gt=0"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"./uploads" validate:"required"`
	// BackendURL 為 live session 呼叫搜尋端點的位址，預設指向本服務
	BackendURL string `env:"BACKEND_URL" validate:"omitempty,url"`

	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms" validate:"gt=0"`
	ToastDelay     time.Duration `env:"TOAST_DELAY" envDefault:"3s" validate:"gt=0"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m" validate:"gt=0"`

	// MigrateReset 啟動時先回滾全部 migration 再重新執行 (開發用)
	MigrateReset bool `env:"MIGRATE_RESET" envDefault:"false"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	CookieSecure bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// LoadEnvFiles 只載入存在的檔案，回傳實際載入數量
func LoadEnvFiles(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func Load(envFiles ...string) (*Config, error) {
	if _, err := LoadEnvFiles(envFiles); err != nil {
		return nil, fmt.Errorf("載入 env 檔失敗: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析環境變數失敗: %w", err)
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = "http://127.0.0.1:" + cfg.Port
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("無效的設定: %w", err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
