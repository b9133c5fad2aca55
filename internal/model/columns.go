package model

// Table and view names are a stable contract consumed by the dashboard
// layer and the text-to-SQL training corpus. TableNames is in dependency
// order: parents are always written before children.
var TableNames = []string{
	"gpos",
	"idns",
	"facilities",
	"products",
	"contracts",
	"rebate_programs",
	"transactions",
}

// ViewNames lists the five analytical views materialized over the base tables.
var ViewNames = []string{
	"v_portfolio_summary",
	"v_price_waterfall",
	"v_customer_performance",
	"v_monthly_trends",
	"v_contract_risk",
}

// Column orders below are shared by the CSV export and the COPY load.

func GPOColumns() []string {
	return []string{"gpo_id", "name", "admin_fee_pct", "member_count"}
}

func (g *GPO) CopyValues() []any {
	return []any{g.GPOID, g.Name, g.AdminFeePct, g.MemberCount}
}

func IDNColumns() []string {
	return []string{"idn_id", "name", "gpo_id", "facility_count", "annual_spend", "region", "state", "tier"}
}

func (i *IDN) CopyValues() []any {
	return []any{i.IDNID, i.Name, nilIfEmpty(i.GPOID), i.FacilityCount, i.AnnualSpend, i.Region, i.State, i.Tier}
}

func FacilityColumns() []string {
	return []string{"facility_id", "idn_id", "name", "facility_type", "bed_count", "state", "region"}
}

func (f *Facility) CopyValues() []any {
	return []any{f.FacilityID, f.IDNID, f.Name, f.FacilityType, f.BedCount, f.State, f.Region}
}

func ProductColumns() []string {
	return []string{"product_id", "name", "category", "list_price", "cost", "sku"}
}

func (p *Product) CopyValues() []any {
	return []any{p.ProductID, p.Name, p.Category, p.ListPrice, p.Cost, p.SKU}
}

func ContractColumns() []string {
	return []string{
		"contract_id", "idn_id", "gpo_id", "deal_structure", "device_category",
		"start_date", "end_date", "duration_months", "base_discount_pct",
		"market_share_commitment", "status", "annual_volume_target",
		"safe_harbor_compliant", "aks_risk_flag",
	}
}

func (c *Contract) CopyValues() []any {
	return []any{
		c.ContractID, c.IDNID, nilIfEmpty(c.GPOID), c.DealStructure, c.DeviceCategory,
		c.StartDate, c.EndDate, c.DurationMonths, c.BaseDiscountPct,
		c.MarketShareCommitment, c.Status, c.AnnualVolumeTarget,
		c.SafeHarborCompliant, c.AKSRiskFlag,
	}
}

func RebateProgramColumns() []string {
	return []string{
		"rebate_id", "contract_id", "rebate_type", "rebate_pct",
		"trigger_type", "trigger_threshold", "orientation", "earned",
	}
}

func (r *RebateProgram) CopyValues() []any {
	return []any{
		r.RebateID, r.ContractID, r.RebateType, r.RebatePct,
		r.TriggerType, r.TriggerThreshold, r.Orientation, r.Earned,
	}
}

func TransactionColumns() []string {
	return []string{
		"transaction_id", "contract_id", "idn_id", "gpo_id", "product_id",
		"transaction_date", "quantity", "list_price", "invoice_price",
		"gpo_admin_fee", "rebate_amount", "lowest_net_price", "unit_cost",
		"margin", "margin_pct", "total_discount_pct", "deal_structure",
		"device_category", "region", "idn_tier", "at_risk", "quarter",
		"year", "month",
	}
}

func (t *Transaction) CopyValues() []any {
	return []any{
		t.TransactionID, t.ContractID, t.IDNID, nilIfEmpty(t.GPOID), t.ProductID,
		t.Date, t.Quantity, t.ListPrice, t.InvoicePrice,
		t.GPOAdminFee, t.RebateAmount, t.LowestNetPrice, t.UnitCost,
		t.Margin, t.MarginPct, t.TotalDiscountPct, t.DealStructure,
		t.DeviceCategory, t.Region, t.IDNTier, t.AtRisk, t.Quarter,
		t.Year, t.Month,
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
