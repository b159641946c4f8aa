package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ModeHTTP     = "http"
	ModeTerminal = "terminal"
)

type Config struct {
	APIURL      string        `envconfig:"CATALOG_API_URL"      required:"true"`
	HTTPTimeout time.Duration `envconfig:"CATALOG_HTTP_TIMEOUT" default:"0s"`
	Mode        string        `envconfig:"CATALOG_MODE"         default:"http"`
	HTTPAddr    string        `envconfig:"CATALOG_HTTP_ADDR"    default:":8090"`
	LogLevel    string        `envconfig:"LOG_LEVEL"            default:"info"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.Mode != ModeHTTP && cfg.Mode != ModeTerminal {
		return nil, fmt.Errorf("invalid CATALOG_MODE %q: want %q or %q", cfg.Mode, ModeHTTP, ModeTerminal)
	}
	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("invalid CATALOG_HTTP_TIMEOUT %s: must not be negative", cfg.HTTPTimeout)
	}
	return &cfg, nil
}
