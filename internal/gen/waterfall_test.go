package gen_test

import (
	"math"
	"testing"

	"github.com/copperbi/coppergen/internal/gen"
)

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestComputeWaterfall(t *testing.T) {
	w := gen.ComputeWaterfall(gen.WaterfallInputs{
		ListPrice:       1000,
		BaseDiscountPct: 0.30,
		AdminFeePct:     0.02,
		RebatePct:       0.04,
		UnitCost:        400,
	})

	if !closeTo(w.InvoicePrice, 700) {
		t.Errorf("invoice = %.6f, want 700", w.InvoicePrice)
	}
	if !closeTo(w.GPOAdminFee, 14) {
		t.Errorf("admin fee = %.6f, want 14", w.GPOAdminFee)
	}
	if !closeTo(w.RebateAmount, 28) {
		t.Errorf("rebate = %.6f, want 28", w.RebateAmount)
	}
	if !closeTo(w.LowestNetPrice, 658) {
		t.Errorf("lowest net = %.6f, want 658", w.LowestNetPrice)
	}
	if !closeTo(w.Margin, 258) {
		t.Errorf("margin = %.6f, want 258", w.Margin)
	}
	if !closeTo(w.MarginPct, 258.0/658.0) {
		t.Errorf("margin pct = %.6f, want %.6f", w.MarginPct, 258.0/658.0)
	}
	if !closeTo(w.TotalDiscountPct, 1-658.0/1000.0) {
		t.Errorf("total discount pct = %.6f, want %.6f", w.TotalDiscountPct, 1-658.0/1000.0)
	}
}

func TestComputeWaterfall_NoPurchasingOrg(t *testing.T) {
	w := gen.ComputeWaterfall(gen.WaterfallInputs{
		ListPrice:       200,
		BaseDiscountPct: 0.10,
		AdminFeePct:     0,
		RebatePct:       0,
		UnitCost:        250,
	})

	if w.GPOAdminFee != 0 || w.RebateAmount != 0 {
		t.Errorf("fee %.6f rebate %.6f, want both 0", w.GPOAdminFee, w.RebateAmount)
	}
	if !closeTo(w.LowestNetPrice, 180) {
		t.Errorf("lowest net = %.6f, want 180", w.LowestNetPrice)
	}
	if w.Margin >= 0 {
		t.Errorf("margin = %.6f, want negative when cost exceeds net", w.Margin)
	}
}
