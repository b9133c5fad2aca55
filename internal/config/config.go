package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the format used for the as-of reference date.
const DateLayout = "2006-01-02"

// StatusMix controls the fraction of contracts generated in each
// lifecycle bucket. The four fractions must sum to 1.
type StatusMix struct {
	Active       float64 `yaml:"active"`
	ExpiringSoon float64 `yaml:"expiring_soon"`
	Expired      float64 `yaml:"expired"`
	Pending      float64 `yaml:"pending"`
}

// Config holds all runtime configuration for a coppergen run.
type Config struct {
	Organizations       int       `yaml:"organizations"`
	Networks            int       `yaml:"networks"`
	ProductsPerCategory int       `yaml:"products_per_category"`
	Contracts           int       `yaml:"contracts"`
	Transactions        int       `yaml:"transactions"`
	Seed                int64     `yaml:"seed"`
	AsOf                string    `yaml:"as_of"`
	Mix                 StatusMix `yaml:"status_mix"`

	OutDir    string
	DSN       string
	LogFormat string // "text" or "json"
	CSVOnly   bool

	asOf time.Time
}

// Default returns the configuration matching the reference dataset.
func Default() Config {
	return Config{
		Organizations:       5,
		Networks:            60,
		ProductsPerCategory: 6,
		Contracts:           150,
		Transactions:        30000,
		Seed:                42,
		AsOf:                "2025-01-15",
		Mix: StatusMix{
			Active:       0.55,
			ExpiringSoon: 0.15,
			Expired:      0.20,
			Pending:      0.10,
		},
		OutDir:    "data",
		LogFormat: "text",
	}
}

// yamlConfig is the on-disk YAML structure. Pointer fields distinguish
// "absent" from "explicit zero" so file values only override what they set.
type yamlConfig struct {
	Organizations       *int       `yaml:"organizations"`
	Networks            *int       `yaml:"networks"`
	ProductsPerCategory *int       `yaml:"products_per_category"`
	Contracts           *int       `yaml:"contracts"`
	Transactions        *int       `yaml:"transactions"`
	Seed                *int64     `yaml:"seed"`
	AsOf                *string    `yaml:"as_of"`
	Mix                 *StatusMix `yaml:"status_mix"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Organizations != nil {
		c.Organizations = *yc.Organizations
	}
	if yc.Networks != nil {
		c.Networks = *yc.Networks
	}
	if yc.ProductsPerCategory != nil {
		c.ProductsPerCategory = *yc.ProductsPerCategory
	}
	if yc.Contracts != nil {
		c.Contracts = *yc.Contracts
	}
	if yc.Transactions != nil {
		c.Transactions = *yc.Transactions
	}
	if yc.Seed != nil {
		c.Seed = *yc.Seed
	}
	if yc.AsOf != nil {
		c.AsOf = *yc.AsOf
	}
	if yc.Mix != nil {
		c.Mix = *yc.Mix
	}
	return nil
}

// Validate checks counts, fractions, and the as-of date. It must pass
// before any output is written; a failing config aborts the run with no I/O.
func (c *Config) Validate() error {
	if c.Organizations < 1 {
		return fmt.Errorf("organizations must be at least 1, got %d", c.Organizations)
	}
	if c.Networks < 1 {
		return fmt.Errorf("networks must be at least 1, got %d", c.Networks)
	}
	if c.ProductsPerCategory < 1 {
		return fmt.Errorf("products-per-category must be at least 1, got %d", c.ProductsPerCategory)
	}
	if c.Contracts < c.Networks {
		return fmt.Errorf("contracts (%d) must be at least networks (%d): every network carries at least one contract",
			c.Contracts, c.Networks)
	}
	if c.Transactions < 1 {
		return fmt.Errorf("transactions must be at least 1, got %d", c.Transactions)
	}
	for name, f := range map[string]float64{
		"active":        c.Mix.Active,
		"expiring_soon": c.Mix.ExpiringSoon,
		"expired":       c.Mix.Expired,
		"pending":       c.Mix.Pending,
	} {
		if f < 0 || f > 1 {
			return fmt.Errorf("status_mix.%s must be within [0,1], got %g", name, f)
		}
	}
	sum := c.Mix.Active + c.Mix.ExpiringSoon + c.Mix.Expired + c.Mix.Pending
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("status_mix fractions must sum to 1, got %g", sum)
	}
	if c.Mix.Active+c.Mix.ExpiringSoon+c.Mix.Expired == 0 {
		return fmt.Errorf("status_mix leaves no active or expired contracts to transact against")
	}
	asOf, err := time.Parse(DateLayout, c.AsOf)
	if err != nil {
		return fmt.Errorf("as-of date %q: %w", c.AsOf, err)
	}
	c.asOf = asOf
	if c.OutDir == "" {
		return fmt.Errorf("--out is required")
	}
	return nil
}

// ValidateWithDSN checks everything Validate does plus the DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or COPPER_DB_URL is required")
	}
	return nil
}

// AsOfTime returns the parsed as-of date. Validate must have been called.
func (c *Config) AsOfTime() time.Time {
	return c.asOf
}
