package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/copperbi/coppergen/internal/model"
)

// Distressed-cost band applied to transactions under High-risk
// contracts: expedited fulfillment pushes unit cost above the catalog
// cost, the only path to a negative margin in the dataset.
const (
	distressedCostLo = 1.05
	distressedCostHi = 1.40
)

// GenerateTransactions produces exactly n fact rows. Each row picks a
// transactable contract uniformly and derives network, organization,
// and product from that contract's relationships; the waterfall is
// computed, never sampled.
func GenerateTransactions(r *rand.Rand, ds *model.Dataset, n int, asOf time.Time) ([]model.Transaction, error) {
	var pool []*model.Contract
	for i := range ds.Contracts {
		if ds.Contracts[i].Transactable() {
			pool = append(pool, &ds.Contracts[i])
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no active or renewed contracts to transact against; adjust the status mix")
	}

	idnByID := make(map[string]*model.IDN, len(ds.IDNs))
	for i := range ds.IDNs {
		idnByID[ds.IDNs[i].IDNID] = &ds.IDNs[i]
	}
	gpoByID := make(map[string]*model.GPO, len(ds.GPOs))
	for i := range ds.GPOs {
		gpoByID[ds.GPOs[i].GPOID] = &ds.GPOs[i]
	}
	productsByCategory := make(map[string][]*model.Product)
	for i := range ds.Products {
		p := &ds.Products[i]
		productsByCategory[p.Category] = append(productsByCategory[p.Category], p)
	}

	// Sum of earned rebate percentages per contract. Unearned programs
	// contribute nothing to the waterfall.
	earnedRebatePct := make(map[string]float64, len(ds.Contracts))
	for _, reb := range ds.RebatePrograms {
		if reb.Earned {
			earnedRebatePct[reb.ContractID] += reb.RebatePct
		}
	}

	txns := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		contract := pool[r.Intn(len(pool))]
		products := productsByCategory[contract.DeviceCategory]
		if len(products) == 0 {
			return nil, fmt.Errorf("no products in category %q referenced by contract %s",
				contract.DeviceCategory, contract.ContractID)
		}
		product := products[r.Intn(len(products))]
		idn := idnByID[contract.IDNID]
		if idn == nil {
			return nil, fmt.Errorf("contract %s references unknown network %s", contract.ContractID, contract.IDNID)
		}

		adminFeePct := 0.0
		if contract.GPOID != "" {
			gpo := gpoByID[contract.GPOID]
			if gpo == nil {
				return nil, fmt.Errorf("contract %s references unknown organization %s", contract.ContractID, contract.GPOID)
			}
			adminFeePct = gpo.AdminFeePct
		}

		atRisk := contract.AKSRiskFlag == "High"
		unitCost := product.Cost
		if atRisk {
			unitCost = product.Cost * uniform(r, distressedCostLo, distressedCostHi)
		}

		w := ComputeWaterfall(WaterfallInputs{
			ListPrice:       product.ListPrice,
			BaseDiscountPct: contract.BaseDiscountPct,
			AdminFeePct:     adminFeePct,
			RebatePct:       earnedRebatePct[contract.ContractID],
			UnitCost:        unitCost,
		})

		date := transactionDate(r, contract.StartDate, contract.EndDate, asOf)

		txns = append(txns, model.Transaction{
			TransactionID:    fmt.Sprintf("TXN-%06d", i+1),
			ContractID:       contract.ContractID,
			IDNID:            contract.IDNID,
			GPOID:            contract.GPOID,
			ProductID:        product.ProductID,
			Date:             date,
			Quantity:         logNormalInt(r, 1.5, 1.0, 1, 200),
			ListPrice:        product.ListPrice,
			InvoicePrice:     w.InvoicePrice,
			GPOAdminFee:      w.GPOAdminFee,
			RebateAmount:     w.RebateAmount,
			LowestNetPrice:   w.LowestNetPrice,
			UnitCost:         unitCost,
			Margin:           w.Margin,
			MarginPct:        w.MarginPct,
			TotalDiscountPct: w.TotalDiscountPct,
			DealStructure:    contract.DealStructure,
			DeviceCategory:   contract.DeviceCategory,
			Region:           idn.Region,
			IDNTier:          idn.Tier,
			AtRisk:           atRisk,
			Quarter:          model.QuarterLabel(date),
			Year:             date.Year(),
			Month:            int(date.Month()),
		})
	}
	return txns, nil
}

// transactionDate draws a date within the contract term, capped at the
// as-of date so trend views carry no future periods.
func transactionDate(r *rand.Rand, start, end, asOf time.Time) time.Time {
	last := end
	if asOf.Before(end) {
		last = asOf
	}
	span := int(last.Sub(start).Hours() / 24)
	if span <= 0 {
		return start
	}
	return start.AddDate(0, 0, r.Intn(span+1))
}
