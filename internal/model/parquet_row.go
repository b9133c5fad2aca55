package model

import (
	"fmt"
	"time"
)

// TransactionParquetRow mirrors the columnar export schema for a single
// fact row. Monetary fields are rounded to cents before construction;
// dates are ISO strings matching the CSV layer.
type TransactionParquetRow struct {
	TransactionID string `parquet:"transaction_id"`
	ContractID    string `parquet:"contract_id"`
	IDNID         string `parquet:"idn_id"`
	GPOID         string `parquet:"gpo_id,optional"`
	ProductID     string `parquet:"product_id"`

	TransactionDate string `parquet:"transaction_date"`
	Quantity        int32  `parquet:"quantity"`

	ListPrice        float64 `parquet:"list_price"`
	InvoicePrice     float64 `parquet:"invoice_price"`
	GPOAdminFee      float64 `parquet:"gpo_admin_fee"`
	RebateAmount     float64 `parquet:"rebate_amount"`
	LowestNetPrice   float64 `parquet:"lowest_net_price"`
	UnitCost         float64 `parquet:"unit_cost"`
	Margin           float64 `parquet:"margin"`
	MarginPct        float64 `parquet:"margin_pct"`
	TotalDiscountPct float64 `parquet:"total_discount_pct"`

	DealStructure  string `parquet:"deal_structure"`
	DeviceCategory string `parquet:"device_category"`
	Region         string `parquet:"region"`
	IDNTier        string `parquet:"idn_tier"`
	AtRisk         bool   `parquet:"at_risk"`

	Quarter string `parquet:"quarter"`
	Year    int32  `parquet:"year"`
	Month   int32  `parquet:"month"`
}

// ToParquetRow converts a Transaction into its columnar export form.
// round is applied to every monetary field (cent precision at the
// persistence boundary) and to the two ratio fields.
func (t *Transaction) ToParquetRow(round func(float64, int32) float64) TransactionParquetRow {
	return TransactionParquetRow{
		TransactionID:    t.TransactionID,
		ContractID:       t.ContractID,
		IDNID:            t.IDNID,
		GPOID:            t.GPOID,
		ProductID:        t.ProductID,
		TransactionDate:  t.Date.Format("2006-01-02"),
		Quantity:         int32(t.Quantity),
		ListPrice:        round(t.ListPrice, 2),
		InvoicePrice:     round(t.InvoicePrice, 2),
		GPOAdminFee:      round(t.GPOAdminFee, 2),
		RebateAmount:     round(t.RebateAmount, 2),
		LowestNetPrice:   round(t.LowestNetPrice, 2),
		UnitCost:         round(t.UnitCost, 2),
		Margin:           round(t.Margin, 2),
		MarginPct:        round(t.MarginPct, 4),
		TotalDiscountPct: round(t.TotalDiscountPct, 4),
		DealStructure:    t.DealStructure,
		DeviceCategory:   t.DeviceCategory,
		Region:           t.Region,
		IDNTier:          t.IDNTier,
		AtRisk:           t.AtRisk,
		Quarter:          t.Quarter,
		Year:             int32(t.Year),
		Month:            int32(t.Month),
	}
}

// Quarter label for a transaction date, e.g. "Q3 2024".
func QuarterLabel(d time.Time) string {
	q := (int(d.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", q, d.Year())
}
