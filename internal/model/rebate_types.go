package model

// RebateType describes one of the four rebate program kinds. Each kind
// has a characteristic trigger condition and percentage band.
type RebateType struct {
	Name    string
	Trigger string
	PctLo   float64
	PctHi   float64
}

// AllRebateTypes lists the supported rebate program kinds in canonical order.
var AllRebateTypes = []RebateType{
	{Name: "Volume", Trigger: "units_threshold", PctLo: 0.02, PctHi: 0.05},
	{Name: "Loyalty", Trigger: "market_share_threshold", PctLo: 0.01, PctHi: 0.03},
	{Name: "Bundle", Trigger: "cross_category_purchase", PctLo: 0.01, PctHi: 0.02},
	{Name: "Growth", Trigger: "yoy_volume_increase", PctLo: 0.005, PctHi: 0.015},
}

// RebateTypeByName returns the RebateType for the given name, or ok=false.
func RebateTypeByName(name string) (RebateType, bool) {
	for _, rt := range AllRebateTypes {
		if rt.Name == name {
			return rt, true
		}
	}
	return RebateType{}, false
}
