package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if c.AsOfTime().IsZero() {
		t.Error("as-of date not parsed by Validate")
	}
}

func TestValidate_NonPositiveCounts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"organizations", func(c *Config) { c.Organizations = 0 }},
		{"networks", func(c *Config) { c.Networks = -1 }},
		{"products", func(c *Config) { c.ProductsPerCategory = 0 }},
		{"transactions", func(c *Config) { c.Transactions = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_ContractsBelowNetworks(t *testing.T) {
	c := Default()
	c.Networks = 60
	c.Contracts = 59
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for contracts < networks")
	}
	if !strings.Contains(err.Error(), "every network carries at least one contract") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_StatusMix(t *testing.T) {
	c := Default()
	c.Mix = StatusMix{Active: 0.5, ExpiringSoon: 0.5, Expired: 0.5, Pending: 0}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for fractions summing above 1")
	}

	c = Default()
	c.Mix = StatusMix{Active: 0, ExpiringSoon: 0, Expired: 0, Pending: 1}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when only pending contracts are possible")
	}

	c = Default()
	c.Mix = StatusMix{Active: -0.2, ExpiringSoon: 0.5, Expired: 0.5, Pending: 0.2}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative fraction")
	}
}

func TestValidate_BadAsOf(t *testing.T) {
	c := Default()
	c.AsOf = "01/15/2025"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unparseable as-of date")
	}
}

func TestLoadFromFile_MergesOnlySetValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("networks: 10\ncontracts: 25\nseed: 7\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Networks != 10 || c.Contracts != 25 || c.Seed != 7 {
		t.Errorf("file values not merged: networks=%d contracts=%d seed=%d", c.Networks, c.Contracts, c.Seed)
	}
	if c.Organizations != 5 || c.Transactions != 30000 {
		t.Errorf("unset values should keep defaults: organizations=%d transactions=%d", c.Organizations, c.Transactions)
	}
}

func TestLoadFromFile_StatusMix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("status_mix:\n  active: 0.7\n  expiring_soon: 0.1\n  expired: 0.1\n  pending: 0.1\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Mix.Active != 0.7 {
		t.Errorf("status mix not merged: %+v", c.Mix)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("merged config should validate: %v", err)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	c := Default()
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateWithDSN(t *testing.T) {
	c := Default()
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error for empty DSN")
	}
	c.DSN = "postgresql://localhost:5432/copper"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
