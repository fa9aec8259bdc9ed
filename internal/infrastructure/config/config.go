package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-only-secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// SessionTTL bounds the bearer token lifetime; the in-memory session
	// itself lives until logout or process exit.
	SessionTTL time.Duration `env:"SESSION_TTL,  default=8h"`
	// BedCapacity is the clinic's total bed count used for occupancy stats.
	BedCapacity int `env:"BED_CAPACITY, default=50"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
