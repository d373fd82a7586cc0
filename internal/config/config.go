// Package config provides configuration management for the somity ledger.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/chalopaltai/somity-ledger/internal/ledger"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// Config represents the application configuration.
type Config struct {
	Port        string
	DBPath      string
	SeedFile    string
	SocietyName string
	Income      ledger.IncomeCategories
	Debug       bool
}

// Load loads configuration from environment variables. It automatically loads
// a .env file from the current directory if available; a custom path can be
// passed instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:        getEnvOrDefault("SOMITY_PORT", "8080"),
		DBPath:      getEnvOrDefault("SOMITY_DB_PATH", "./data/somity.db"),
		SeedFile:    os.Getenv("SOMITY_SEED_FILE"),
		SocietyName: getEnvOrDefault("SOMITY_NAME", "চলো পাল্টাই যুব কল্যাণ সমিতি"),
		Income: ledger.IncomeCategories{
			AdmissionFees: 12500,
			SavingsFines:  3200,
			LoanFines:     4500,
			LoanFormFees:  2100,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return cfg, nil
}

// seedFile is the YAML shape of a first-run seed file.
type seedFile struct {
	Seed   store.Seed               `yaml:",inline"`
	Income *ledger.IncomeCategories `yaml:"income"`
}

// LoadSeed parses a YAML seed file holding first-run users and members, and
// optionally the fixed income heads. Income overrides, when present, are
// applied to cfg.
func (c *Config) LoadSeed(path string) (store.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return store.Seed{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if f.Income != nil {
		c.Income = *f.Income
	}
	return f.Seed, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
