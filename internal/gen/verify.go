package gen

import (
	"fmt"
	"math"

	"github.com/copperbi/coppergen/internal/model"
)

// centTolerance is the permitted absolute drift on monetary identities.
const centTolerance = 0.01

// InvariantError reports a derived field failing its arithmetic identity
// or a dangling reference. It marks a generator defect: the dataset is
// discarded, never persisted.
type InvariantError struct {
	Table  string
	ID     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation in %s %s: %s", e.Table, e.ID, e.Detail)
}

// Verify re-derives every accounting identity and foreign key in the
// dataset before anything is written. It is cheap relative to I/O and
// runs on every generation.
func Verify(ds *model.Dataset) error {
	gpoByID := make(map[string]*model.GPO, len(ds.GPOs))
	for i := range ds.GPOs {
		gpoByID[ds.GPOs[i].GPOID] = &ds.GPOs[i]
	}

	idnByID := make(map[string]*model.IDN, len(ds.IDNs))
	facilityCounts := make(map[string]int, len(ds.IDNs))
	for i := range ds.IDNs {
		idn := &ds.IDNs[i]
		idnByID[idn.IDNID] = idn
		if idn.GPOID != "" && gpoByID[idn.GPOID] == nil {
			return &InvariantError{"idns", idn.IDNID, fmt.Sprintf("unknown gpo_id %s", idn.GPOID)}
		}
		if idn.FacilityCount < 1 {
			return &InvariantError{"idns", idn.IDNID, "facility_count below 1"}
		}
	}

	for _, f := range ds.Facilities {
		if idnByID[f.IDNID] == nil {
			return &InvariantError{"facilities", f.FacilityID, fmt.Sprintf("unknown idn_id %s", f.IDNID)}
		}
		facilityCounts[f.IDNID]++
	}
	for _, idn := range ds.IDNs {
		if facilityCounts[idn.IDNID] != idn.FacilityCount {
			return &InvariantError{"idns", idn.IDNID,
				fmt.Sprintf("facility_count %d but %d facilities generated", idn.FacilityCount, facilityCounts[idn.IDNID])}
		}
	}

	productByID := make(map[string]*model.Product, len(ds.Products))
	for i := range ds.Products {
		p := &ds.Products[i]
		productByID[p.ProductID] = p
		if p.Cost >= p.ListPrice {
			return &InvariantError{"products", p.ProductID,
				fmt.Sprintf("cost %.4f not below list price %.4f", p.Cost, p.ListPrice)}
		}
	}

	contractByID := make(map[string]*model.Contract, len(ds.Contracts))
	for i := range ds.Contracts {
		c := &ds.Contracts[i]
		contractByID[c.ContractID] = c
		if idnByID[c.IDNID] == nil {
			return &InvariantError{"contracts", c.ContractID, fmt.Sprintf("unknown idn_id %s", c.IDNID)}
		}
		if c.GPOID != "" && gpoByID[c.GPOID] == nil {
			return &InvariantError{"contracts", c.ContractID, fmt.Sprintf("unknown gpo_id %s", c.GPOID)}
		}
		tier, ok := model.DealStructureByName(c.DealStructure)
		if !ok {
			return &InvariantError{"contracts", c.ContractID, fmt.Sprintf("unknown deal structure %q", c.DealStructure)}
		}
		if !tier.InDiscountBand(c.BaseDiscountPct) {
			return &InvariantError{"contracts", c.ContractID,
				fmt.Sprintf("discount %.4f outside %s band [%.2f,%.2f)", c.BaseDiscountPct, tier.Name, tier.DiscountLo, tier.DiscountHi)}
		}
		if !c.StartDate.Before(c.EndDate) {
			return &InvariantError{"contracts", c.ContractID, "start date not before end date"}
		}
	}

	earnedRebatePct := make(map[string]float64, len(ds.Contracts))
	for _, reb := range ds.RebatePrograms {
		if contractByID[reb.ContractID] == nil {
			return &InvariantError{"rebate_programs", reb.RebateID, fmt.Sprintf("unknown contract_id %s", reb.ContractID)}
		}
		rt, ok := model.RebateTypeByName(reb.RebateType)
		if !ok {
			return &InvariantError{"rebate_programs", reb.RebateID, fmt.Sprintf("unknown rebate type %q", reb.RebateType)}
		}
		if reb.RebatePct < rt.PctLo || reb.RebatePct >= rt.PctHi {
			return &InvariantError{"rebate_programs", reb.RebateID,
				fmt.Sprintf("pct %.4f outside %s band [%.3f,%.3f)", reb.RebatePct, rt.Name, rt.PctLo, rt.PctHi)}
		}
		if reb.Earned {
			earnedRebatePct[reb.ContractID] += reb.RebatePct
		}
	}

	for i := range ds.Transactions {
		t := &ds.Transactions[i]
		if err := verifyTransaction(t, contractByID, idnByID, gpoByID, productByID, earnedRebatePct); err != nil {
			return err
		}
	}
	return nil
}

// verifyTransaction rechecks the full waterfall chain against the
// entities the row references, to within a cent.
func verifyTransaction(
	t *model.Transaction,
	contracts map[string]*model.Contract,
	idns map[string]*model.IDN,
	gpos map[string]*model.GPO,
	products map[string]*model.Product,
	earnedRebatePct map[string]float64,
) error {
	fail := func(detail string) error {
		return &InvariantError{"transactions", t.TransactionID, detail}
	}

	contract := contracts[t.ContractID]
	if contract == nil {
		return fail(fmt.Sprintf("unknown contract_id %s", t.ContractID))
	}
	product := products[t.ProductID]
	if product == nil {
		return fail(fmt.Sprintf("unknown product_id %s", t.ProductID))
	}
	if idns[t.IDNID] == nil {
		return fail(fmt.Sprintf("unknown idn_id %s", t.IDNID))
	}
	if t.IDNID != contract.IDNID || t.GPOID != contract.GPOID {
		return fail("network/organization references disagree with the contract")
	}
	adminFeePct := 0.0
	if t.GPOID != "" {
		gpo := gpos[t.GPOID]
		if gpo == nil {
			return fail(fmt.Sprintf("unknown gpo_id %s", t.GPOID))
		}
		adminFeePct = gpo.AdminFeePct
	}
	if t.Quantity < 1 {
		return fail(fmt.Sprintf("quantity %d below 1", t.Quantity))
	}

	want := ComputeWaterfall(WaterfallInputs{
		ListPrice:       product.ListPrice,
		BaseDiscountPct: contract.BaseDiscountPct,
		AdminFeePct:     adminFeePct,
		RebatePct:       earnedRebatePct[t.ContractID],
		UnitCost:        t.UnitCost,
	})

	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"list_price", t.ListPrice, product.ListPrice},
		{"invoice_price", t.InvoicePrice, want.InvoicePrice},
		{"gpo_admin_fee", t.GPOAdminFee, want.GPOAdminFee},
		{"rebate_amount", t.RebateAmount, want.RebateAmount},
		{"lowest_net_price", t.LowestNetPrice, want.LowestNetPrice},
		{"margin", t.Margin, want.Margin},
	} {
		if math.Abs(c.got-c.want) > centTolerance {
			return fail(fmt.Sprintf("%s %.6f does not match derived %.6f", c.name, c.got, c.want))
		}
	}
	if t.LowestNetPrice > 0 && math.Abs(t.MarginPct-t.Margin/t.LowestNetPrice) > 1e-9 {
		return fail("margin_pct does not match margin / lowest_net_price")
	}
	if math.Abs(t.TotalDiscountPct-(1-t.LowestNetPrice/t.ListPrice)) > 1e-9 {
		return fail("total_discount_pct does not match 1 - lowest_net_price / list_price")
	}
	if t.LowestNetPrice < 0 {
		return fail(fmt.Sprintf("negative lowest_net_price %.6f", t.LowestNetPrice))
	}
	if t.Margin < 0 && !t.AtRisk {
		return fail(fmt.Sprintf("negative margin %.6f on a contract not seeded at-risk", t.Margin))
	}
	if t.AtRisk != (contract.AKSRiskFlag == "High") {
		return fail("at_risk flag disagrees with the contract risk flag")
	}
	if !t.AtRisk && math.Abs(t.UnitCost-product.Cost) > centTolerance {
		return fail("unit_cost differs from catalog cost on a row not seeded at-risk")
	}
	if t.Year != t.Date.Year() || t.Month != int(t.Date.Month()) || t.Quarter != model.QuarterLabel(t.Date) {
		return fail("calendar fields disagree with transaction_date")
	}
	return nil
}
