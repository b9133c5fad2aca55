package gen_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/gen"
	"github.com/copperbi/coppergen/internal/model"
)

func testContracts(t *testing.T, seed int64, n int) ([]model.Contract, []model.IDN, time.Time) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	f := gofakeit.New(uint64(seed))
	gpos := gen.GenerateGPOs(r, f, 5)
	idns := gen.GenerateIDNs(r, f, gpos, 30)
	asOf, _ := time.Parse("2006-01-02", "2025-01-15")
	mix := config.Default().Mix
	return gen.GenerateContracts(r, idns, n, asOf, mix), idns, asOf
}

func TestGenerateContracts_CoverageAndBands(t *testing.T) {
	contracts, idns, _ := testContracts(t, 10, 120)
	if len(contracts) != 120 {
		t.Fatalf("expected 120 contracts, got %d", len(contracts))
	}

	covered := make(map[string]bool)
	for _, c := range contracts {
		covered[c.IDNID] = true

		tier, ok := model.DealStructureByName(c.DealStructure)
		if !ok {
			t.Fatalf("%s has unknown deal structure %q", c.ContractID, c.DealStructure)
		}
		if !tier.InDiscountBand(c.BaseDiscountPct) {
			t.Errorf("%s discount %.4f outside %s band [%.2f,%.2f)",
				c.ContractID, c.BaseDiscountPct, tier.Name, tier.DiscountLo, tier.DiscountHi)
		}
		if tier.ShareHi > 0 {
			if c.MarketShareCommitment < tier.ShareLo || c.MarketShareCommitment >= tier.ShareHi {
				t.Errorf("%s commitment %.2f outside %s band", c.ContractID, c.MarketShareCommitment, tier.Name)
			}
		} else if c.MarketShareCommitment != 0 {
			t.Errorf("%s tier %s should carry no commitment, got %.2f", c.ContractID, tier.Name, c.MarketShareCommitment)
		}
		if _, ok := model.DeviceCategoryByName(c.DeviceCategory); !ok {
			t.Errorf("%s has unknown device category %q", c.ContractID, c.DeviceCategory)
		}
		switch c.AKSRiskFlag {
		case "Low", "Medium", "High":
		default:
			t.Errorf("%s has unknown risk flag %q", c.ContractID, c.AKSRiskFlag)
		}
	}
	// The first len(idns) contracts cover every network once.
	for _, idn := range idns {
		if !covered[idn.IDNID] {
			t.Errorf("network %s has no contract", idn.IDNID)
		}
	}
}

func TestGenerateContracts_StatusAgreesWithDates(t *testing.T) {
	contracts, _, asOf := testContracts(t, 11, 200)

	expiringSoon := 0
	statuses := make(map[string]int)
	for _, c := range contracts {
		statuses[c.Status]++
		if !c.StartDate.Before(c.EndDate) {
			t.Errorf("%s start %s not before end %s", c.ContractID, c.StartDate, c.EndDate)
		}
		switch c.Status {
		case "Expired", "Renewed":
			if !c.EndDate.Before(asOf) {
				t.Errorf("%s status %s but end date %s not in the past", c.ContractID, c.Status, c.EndDate)
			}
		case "Pending":
			if !c.StartDate.After(asOf) {
				t.Errorf("%s pending but start date %s not in the future", c.ContractID, c.StartDate)
			}
		case "Active":
			if c.StartDate.After(asOf) || c.EndDate.Before(asOf) {
				t.Errorf("%s active but as-of date outside [%s, %s]", c.ContractID, c.StartDate, c.EndDate)
			}
			if !c.EndDate.After(asOf.AddDate(0, 0, 90)) {
				expiringSoon++
			}
		default:
			t.Errorf("%s has unknown status %q", c.ContractID, c.Status)
		}
	}
	// The configured mix seeds every lifecycle bucket.
	if statuses["Active"] == 0 || statuses["Pending"] == 0 || statuses["Expired"]+statuses["Renewed"] == 0 {
		t.Errorf("lifecycle buckets not all populated: %v", statuses)
	}
	if expiringSoon == 0 {
		t.Error("no contract expiring within 90 days; at-risk views would be empty")
	}
}

func TestGenerateRebatePrograms(t *testing.T) {
	contracts, _, _ := testContracts(t, 12, 80)
	r := rand.New(rand.NewSource(12))
	rebates := gen.GenerateRebatePrograms(r, contracts)

	perContract := make(map[string]map[string]bool)
	contractIDs := make(map[string]bool)
	for _, c := range contracts {
		contractIDs[c.ContractID] = true
	}
	earned := 0
	for _, reb := range rebates {
		if !contractIDs[reb.ContractID] {
			t.Fatalf("%s references unknown contract %s", reb.RebateID, reb.ContractID)
		}
		rt, ok := model.RebateTypeByName(reb.RebateType)
		if !ok {
			t.Fatalf("%s has unknown type %q", reb.RebateID, reb.RebateType)
		}
		if reb.RebatePct < rt.PctLo || reb.RebatePct >= rt.PctHi {
			t.Errorf("%s pct %.4f outside %s band", reb.RebateID, reb.RebatePct, rt.Name)
		}
		if reb.TriggerType != rt.Trigger {
			t.Errorf("%s trigger %q disagrees with type %s", reb.RebateID, reb.TriggerType, rt.Name)
		}
		if reb.TriggerThreshold < 0.5 || reb.TriggerThreshold >= 0.9 {
			t.Errorf("%s threshold %.2f outside [0.5, 0.9)", reb.RebateID, reb.TriggerThreshold)
		}
		if perContract[reb.ContractID] == nil {
			perContract[reb.ContractID] = make(map[string]bool)
		}
		if perContract[reb.ContractID][reb.RebateType] {
			t.Errorf("contract %s has duplicate %s program", reb.ContractID, reb.RebateType)
		}
		perContract[reb.ContractID][reb.RebateType] = true
		if reb.Earned {
			earned++
		}
	}
	for id, types := range perContract {
		if len(types) < 1 || len(types) > 3 {
			t.Errorf("contract %s has %d programs, want 1-3", id, len(types))
		}
	}
	if len(perContract) != len(contracts) {
		t.Errorf("%d contracts have programs, want all %d", len(perContract), len(contracts))
	}
	if earned == 0 || earned == len(rebates) {
		t.Errorf("earned flag not mixed: %d of %d", earned, len(rebates))
	}
}
