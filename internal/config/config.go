// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"auction-marketplace/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the settings shared by the HTTP server and the console
type Config struct {
	Port       string // listen address, e.g. ":8080"
	LogLevel   string
	BcryptCost int
	SeedItems  bool // pre-populate demo items at startup
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:       ":8080",
		LogLevel:   "info",
		BcryptCost: bcrypt.DefaultCost,
		SeedItems:  false,
	}
}

// Load reads an optional .env file (files earlier in the list win), then
// applies PORT, LOG_LEVEL, BCRYPT_COST and SEED_ITEMS on top of the defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Defaults()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		if !strings.Contains(p, ":") {
			p = ":" + p
		}
		cfg.Port = p
	}

	if lvl := strings.TrimSpace(os.Getenv("LOG_LEVEL")); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}

	if v := strings.TrimSpace(os.Getenv("BCRYPT_COST")); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: BCRYPT_COST %q: %w", v, err)
		}
		cfg.BcryptCost = cost
	}

	if v := strings.TrimSpace(os.Getenv("SEED_ITEMS")); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: SEED_ITEMS %q: %w", v, err)
		}
		cfg.SeedItems = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: bcrypt cost %d outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// ApplyLogging sets the global log level, falling back to info on an unknown level
func (c Config) ApplyLogging() {
	if err := utils.SetLevel(c.LogLevel); err != nil {
		utils.Warn("unknown log level, using info", map[string]any{"log_level": c.LogLevel})
		_ = utils.SetLevel("info")
	}
}
