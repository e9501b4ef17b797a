// File: internal/config/config.go
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 啟動時讀取一次的環境設定，之後只讀不寫
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,required"`
	RedisAddr     string        `env:"REDIS_ADDR,required"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	ListenAddr    string        `env:"LISTEN_ADDR" envDefault:":8080"`
}

// Load 解析環境變數並回傳設定
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
