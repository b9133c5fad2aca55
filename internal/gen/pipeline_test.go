package gen_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/gen"
)

func TestBuild_SummaryCounts(t *testing.T) {
	ds, summary := buildDataset(t, func(c *config.Config) { c.Transactions = 1000 })

	if summary.GPOs != len(ds.GPOs) ||
		summary.IDNs != len(ds.IDNs) ||
		summary.Facilities != len(ds.Facilities) ||
		summary.Products != len(ds.Products) ||
		summary.Contracts != len(ds.Contracts) ||
		summary.RebatePrograms != len(ds.RebatePrograms) ||
		summary.Transactions != len(ds.Transactions) {
		t.Errorf("summary counts disagree with dataset: %+v", summary)
	}
	if summary.Seed != 42 {
		t.Errorf("summary seed %d, want 42", summary.Seed)
	}
	if _, err := uuid.Parse(summary.RunID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", summary.RunID, err)
	}
	if summary.DurationTotal <= 0 {
		t.Error("total duration not recorded")
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Networks = 0

	_, _, err := gen.Build(&cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	var pErr *gen.PipelineError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PipelineError, got %T: %v", err, err)
	}
	if pErr.Phase != "config" {
		t.Errorf("failure attributed to phase %q, want config", pErr.Phase)
	}
}

func TestGenerateTransactions_NoTransactableContracts(t *testing.T) {
	ds, _ := buildDataset(t, func(c *config.Config) { c.Transactions = 100 })
	for i := range ds.Contracts {
		ds.Contracts[i].Status = "Pending"
	}

	r := rand.New(rand.NewSource(1))
	asOf, _ := time.Parse(config.DateLayout, config.Default().AsOf)
	if _, err := gen.GenerateTransactions(r, ds, 100, asOf); err == nil {
		t.Fatal("expected error when no contract is transactable")
	}
}
