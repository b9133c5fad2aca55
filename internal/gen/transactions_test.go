package gen_test

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/gen"
	"github.com/copperbi/coppergen/internal/model"
)

func buildDataset(t *testing.T, mutate func(*config.Config)) (*model.Dataset, *model.RunSummary) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	ds, summary, err := gen.Build(&cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds, summary
}

func TestGenerateTransactions_ReferenceScenario(t *testing.T) {
	ds, _ := buildDataset(t, nil)

	if len(ds.Transactions) != 30000 {
		t.Fatalf("expected 30000 transactions, got %d", len(ds.Transactions))
	}

	contractByID := make(map[string]model.Contract)
	for _, c := range ds.Contracts {
		contractByID[c.ContractID] = c
	}
	productByID := make(map[string]model.Product)
	for _, p := range ds.Products {
		productByID[p.ProductID] = p
	}
	asOf, err := time.Parse(config.DateLayout, config.Default().AsOf)
	if err != nil {
		t.Fatalf("parse as-of date: %v", err)
	}

	var sumMargin, sumNet, sumCost float64
	negative := 0
	for _, txn := range ds.Transactions {
		c, ok := contractByID[txn.ContractID]
		if !ok {
			t.Fatalf("%s references unknown contract %s", txn.TransactionID, txn.ContractID)
		}
		if !c.Transactable() {
			t.Errorf("%s references %s contract %s", txn.TransactionID, c.Status, c.ContractID)
		}
		if txn.IDNID != c.IDNID || txn.GPOID != c.GPOID {
			t.Errorf("%s network/organization disagrees with contract %s", txn.TransactionID, c.ContractID)
		}
		p, ok := productByID[txn.ProductID]
		if !ok {
			t.Fatalf("%s references unknown product %s", txn.TransactionID, txn.ProductID)
		}
		if p.Category != c.DeviceCategory {
			t.Errorf("%s product category %s outside contract category %s", txn.TransactionID, p.Category, c.DeviceCategory)
		}

		if txn.LowestNetPrice < 0 {
			t.Errorf("%s negative net price %.4f", txn.TransactionID, txn.LowestNetPrice)
		}
		if txn.Margin < 0 {
			negative++
			if !txn.AtRisk {
				t.Errorf("%s has negative margin %.4f without the at-risk flag", txn.TransactionID, txn.Margin)
			}
		}
		if txn.Quantity < 1 {
			t.Errorf("%s quantity %d below 1", txn.TransactionID, txn.Quantity)
		}

		last := c.EndDate
		if asOf.Before(last) {
			last = asOf
		}
		if txn.Date.Before(c.StartDate) || txn.Date.After(last) {
			t.Errorf("%s date %s outside [%s, %s]", txn.TransactionID, txn.Date, c.StartDate, last)
		}

		sumMargin += txn.Margin
		sumNet += txn.LowestNetPrice
		sumCost += txn.UnitCost
	}

	// Every row satisfies margin = net - unit_cost, so the totals do too.
	if diff := math.Abs(sumMargin - (sumNet - sumCost)); diff > 1e-3 {
		t.Errorf("aggregate margin identity off by %.6f", diff)
	}
	if negative == 0 {
		t.Error("no negative-margin rows; at-risk seeding produced nothing")
	}
}

func TestGenerateTransactions_Determinism(t *testing.T) {
	first, _ := buildDataset(t, func(c *config.Config) { c.Transactions = 2000 })
	second, _ := buildDataset(t, func(c *config.Config) { c.Transactions = 2000 })
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different datasets")
	}

	third, _ := buildDataset(t, func(c *config.Config) {
		c.Transactions = 2000
		c.Seed = 43
	})
	if reflect.DeepEqual(first.Transactions, third.Transactions) {
		t.Fatal("different seeds produced identical transactions")
	}
}

func TestVerify_DetectsCorruption(t *testing.T) {
	ds, _ := buildDataset(t, func(c *config.Config) { c.Transactions = 500 })

	if err := gen.Verify(ds); err != nil {
		t.Fatalf("clean dataset failed verification: %v", err)
	}

	ds.Transactions[0].InvoicePrice += 5
	err := gen.Verify(ds)
	if err == nil {
		t.Fatal("expected verification failure after corrupting invoice price")
	}
	var invErr *gen.InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvariantError, got %T: %v", err, err)
	}
	if invErr.Table != "transactions" {
		t.Errorf("violation attributed to %q, want transactions", invErr.Table)
	}
}
