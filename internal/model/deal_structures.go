package model

// DealStructure is one of the five contract deal-structure tiers, ordered
// from highest market-share commitment (and deepest discount band) to
// lowest. Each tier carries its own discount band, commitment band, and
// risk-flag weighting so callers look attributes up by tier instead of
// branching on names.
type DealStructure struct {
	Name        string
	Weight      float64 // share of generated contracts
	DiscountLo  float64 // base discount band, half-open [lo, hi)
	DiscountHi  float64
	ShareLo     float64 // market-share commitment band
	ShareHi     float64
	RiskWeights [3]float64 // P(Low), P(Medium), P(High)
}

// AllDealStructures lists the tiers in canonical commitment order.
// Discount bands are pairwise disjoint and strictly decreasing.
var AllDealStructures = []DealStructure{
	{Name: "PV", Weight: 0.25, DiscountLo: 0.28, DiscountHi: 0.40, ShareLo: 0.80, ShareHi: 0.95, RiskWeights: [3]float64{0.55, 0.30, 0.15}},
	{Name: "DV", Weight: 0.30, DiscountLo: 0.20, DiscountHi: 0.28, ShareLo: 0.40, ShareHi: 0.60, RiskWeights: [3]float64{0.65, 0.25, 0.10}},
	{Name: "TV", Weight: 0.15, DiscountLo: 0.14, DiscountHi: 0.20, ShareLo: 0.25, ShareHi: 0.35, RiskWeights: [3]float64{0.72, 0.22, 0.06}},
	{Name: "Access", Weight: 0.20, DiscountLo: 0.07, DiscountHi: 0.14, ShareLo: 0, ShareHi: 0, RiskWeights: [3]float64{0.80, 0.16, 0.04}},
	{Name: "All Play", Weight: 0.10, DiscountLo: 0.02, DiscountHi: 0.07, ShareLo: 0, ShareHi: 0, RiskWeights: [3]float64{0.88, 0.10, 0.02}},
}

// RiskFlags are the risk levels in the order RiskWeights indexes them.
var RiskFlags = [3]string{"Low", "Medium", "High"}

// DealStructureByName returns the tier for the given name, or ok=false.
func DealStructureByName(name string) (DealStructure, bool) {
	for _, ds := range AllDealStructures {
		if ds.Name == name {
			return ds, true
		}
	}
	return DealStructure{}, false
}

// InDiscountBand reports whether pct falls inside the tier's band.
func (d DealStructure) InDiscountBand(pct float64) bool {
	return pct >= d.DiscountLo && pct < d.DiscountHi
}
