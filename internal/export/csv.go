package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/copperbi/coppergen/internal/model"
)

const dateLayout = "2006-01-02"

// WriteRaw writes one CSV per entity collection under outDir/raw, in
// dependency order. Files are built in a scratch directory and swapped
// into place at the end, so a crash mid-export never leaves a partial
// raw layer where readers look for one. Re-running overwrites.
func WriteRaw(ds *model.Dataset, outDir string) error {
	rawDir := filepath.Join(outDir, "raw")
	tmpDir := rawDir + ".tmp"

	if err := os.RemoveAll(tmpDir); err != nil {
		return fmt.Errorf("clear scratch dir: %w", err)
	}
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}

	writes := []struct {
		name    string
		columns []string
		count   int
		record  func(i int) []string
	}{
		{"gpos.csv", model.GPOColumns(), len(ds.GPOs), func(i int) []string { return gpoRecord(&ds.GPOs[i]) }},
		{"idns.csv", model.IDNColumns(), len(ds.IDNs), func(i int) []string { return idnRecord(&ds.IDNs[i]) }},
		{"facilities.csv", model.FacilityColumns(), len(ds.Facilities), func(i int) []string { return facilityRecord(&ds.Facilities[i]) }},
		{"products.csv", model.ProductColumns(), len(ds.Products), func(i int) []string { return productRecord(&ds.Products[i]) }},
		{"contracts.csv", model.ContractColumns(), len(ds.Contracts), func(i int) []string { return contractRecord(&ds.Contracts[i]) }},
		{"rebate_programs.csv", model.RebateProgramColumns(), len(ds.RebatePrograms), func(i int) []string { return rebateRecord(&ds.RebatePrograms[i]) }},
		{"transactions.csv", model.TransactionColumns(), len(ds.Transactions), func(i int) []string { return transactionRecord(&ds.Transactions[i]) }},
	}

	for _, w := range writes {
		if err := writeCSV(filepath.Join(tmpDir, w.name), w.columns, w.count, w.record); err != nil {
			return fmt.Errorf("write %s: %w", w.name, err)
		}
	}

	if err := os.RemoveAll(rawDir); err != nil {
		return fmt.Errorf("remove previous raw layer: %w", err)
	}
	if err := os.Rename(tmpDir, rawDir); err != nil {
		return fmt.Errorf("swap raw layer into place: %w", err)
	}
	return nil
}

func writeCSV(path string, header []string, count int, record func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for i := 0; i < count; i++ {
		if err := w.Write(record(i)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// money rounds to cent precision at the persistence boundary. Upstream
// values stay unrounded so the waterfall chain never compounds rounding.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ratio formats percentage-like fields with four decimal places.
func ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

func gpoRecord(g *model.GPO) []string {
	return []string{g.GPOID, g.Name, ratio(g.AdminFeePct), strconv.Itoa(g.MemberCount)}
}

func idnRecord(i *model.IDN) []string {
	return []string{
		i.IDNID, i.Name, i.GPOID, strconv.Itoa(i.FacilityCount),
		strconv.FormatInt(i.AnnualSpend, 10), i.Region, i.State, i.Tier,
	}
}

func facilityRecord(f *model.Facility) []string {
	return []string{
		f.FacilityID, f.IDNID, f.Name, f.FacilityType,
		strconv.Itoa(f.BedCount), f.State, f.Region,
	}
}

func productRecord(p *model.Product) []string {
	return []string{p.ProductID, p.Name, p.Category, money(p.ListPrice), money(p.Cost), p.SKU}
}

func contractRecord(c *model.Contract) []string {
	return []string{
		c.ContractID, c.IDNID, c.GPOID, c.DealStructure, c.DeviceCategory,
		c.StartDate.Format(dateLayout), c.EndDate.Format(dateLayout),
		strconv.Itoa(c.DurationMonths), ratio(c.BaseDiscountPct),
		ratio(c.MarketShareCommitment), c.Status,
		strconv.Itoa(c.AnnualVolumeTarget),
		strconv.FormatBool(c.SafeHarborCompliant), c.AKSRiskFlag,
	}
}

func rebateRecord(r *model.RebateProgram) []string {
	return []string{
		r.RebateID, r.ContractID, r.RebateType, ratio(r.RebatePct),
		r.TriggerType, ratio(r.TriggerThreshold), r.Orientation,
		strconv.FormatBool(r.Earned),
	}
}

func transactionRecord(t *model.Transaction) []string {
	return []string{
		t.TransactionID, t.ContractID, t.IDNID, t.GPOID, t.ProductID,
		t.Date.Format(dateLayout), strconv.Itoa(t.Quantity),
		money(t.ListPrice), money(t.InvoicePrice), money(t.GPOAdminFee),
		money(t.RebateAmount), money(t.LowestNetPrice), money(t.UnitCost),
		money(t.Margin), ratio(t.MarginPct), ratio(t.TotalDiscountPct),
		t.DealStructure, t.DeviceCategory, t.Region, t.IDNTier,
		strconv.FormatBool(t.AtRisk), t.Quarter,
		strconv.Itoa(t.Year), strconv.Itoa(t.Month),
	}
}
