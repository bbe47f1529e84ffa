package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every process-level tunable. Balance numbers do not live
// here; those come from the catalog files.
type Config struct {
	Addr          string        `env:"DUSKPACT_ADDR" envDefault:":8080"`
	DBDSN         string        `env:"DUSKPACT_DB_DSN"`
	CatalogRoot   string        `env:"DUSKPACT_CATALOG_ROOT" envDefault:"./catalog"`
	MigrationsDir string        `env:"DUSKPACT_MIGRATIONS_DIR" envDefault:"./migrations"`
	TopN          int           `env:"DUSKPACT_OBSERVATION_TOP_N" envDefault:"5"`
	CardCount     int           `env:"DUSKPACT_CARD_COUNT" envDefault:"3"`
	MaxRefresh    int           `env:"DUSKPACT_MAX_REFRESH" envDefault:"2"`
	ConfirmWindow time.Duration `env:"DUSKPACT_CONFIRM_WINDOW" envDefault:"30s"`
	RNGSeed       int64         `env:"DUSKPACT_RNG_SEED"`
	PlayerName    string        `env:"DUSKPACT_PLAYER_NAME" envDefault:"Hero"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
