package gen

// WaterfallInputs are the only quantities the pricing waterfall depends
// on. Every derived monetary field of a transaction comes from these;
// nothing downstream is independently randomized.
type WaterfallInputs struct {
	ListPrice       float64
	BaseDiscountPct float64
	AdminFeePct     float64 // 0 when the contract has no purchasing org
	RebatePct       float64 // sum of earned program percentages
	UnitCost        float64
}

// Waterfall is the ordered decomposition from list price to margin.
// Values are unrounded; cent rounding happens at the persistence boundary.
type Waterfall struct {
	InvoicePrice     float64
	GPOAdminFee      float64
	RebateAmount     float64
	LowestNetPrice   float64
	Margin           float64
	MarginPct        float64
	TotalDiscountPct float64
}

// ComputeWaterfall applies the pricing identities:
//
//	invoice    = list * (1 - discount)
//	admin fee  = invoice * admin_fee_pct
//	rebates    = invoice * rebate_pct
//	lowest net = invoice - admin fee - rebates
//	margin     = lowest net - unit cost
func ComputeWaterfall(in WaterfallInputs) Waterfall {
	w := Waterfall{}
	w.InvoicePrice = in.ListPrice * (1 - in.BaseDiscountPct)
	w.GPOAdminFee = w.InvoicePrice * in.AdminFeePct
	w.RebateAmount = w.InvoicePrice * in.RebatePct
	w.LowestNetPrice = w.InvoicePrice - w.GPOAdminFee - w.RebateAmount
	w.Margin = w.LowestNetPrice - in.UnitCost
	if w.LowestNetPrice > 0 {
		w.MarginPct = w.Margin / w.LowestNetPrice
	}
	if in.ListPrice > 0 {
		w.TotalDiscountPct = 1 - w.LowestNetPrice/in.ListPrice
	}
	return w
}
