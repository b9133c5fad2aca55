package model

// DeviceCategory groups catalog products and bounds their list prices.
type DeviceCategory struct {
	Name     string
	PriceLo  float64
	PriceHi  float64
	Products []string
}

// AllDeviceCategories lists the device categories in canonical order.
// Product names seed the catalog; when more products per category are
// requested than names exist, the generator suffixes a series number.
var AllDeviceCategories = []DeviceCategory{
	{Name: "Orthopedic Implants", PriceLo: 500, PriceHi: 15000, Products: []string{
		"Total Knee System", "Total Hip System", "Spinal Fusion Rod",
		"Shoulder Arthroplasty Kit", "Trauma Plate Set", "ACL Reconstruction Kit",
	}},
	{Name: "Cardiovascular", PriceLo: 1000, PriceHi: 30000, Products: []string{
		"Drug-Eluting Stent", "Pacemaker Dual Chamber", "Heart Valve Prosthesis",
		"Ablation Catheter", "Guidewire Set", "Angioplasty Balloon",
	}},
	{Name: "Surgical Instruments", PriceLo: 50, PriceHi: 2000, Products: []string{
		"Laparoscopic Stapler", "Electrosurgical Generator", "Suture Kit Premium",
		"Trocar Set", "Clip Applier", "Vessel Sealing Device",
	}},
	{Name: "Consumables", PriceLo: 5, PriceHi: 200, Products: []string{
		"Surgical Drape Pack", "Wound Closure Strip", "Hemostatic Agent",
		"Irrigation Solution", "Skin Prep Kit", "Adhesive Bandage Box",
	}},
}

// DeviceCategoryByName returns the category for the given name, or ok=false.
func DeviceCategoryByName(name string) (DeviceCategory, bool) {
	for _, dc := range AllDeviceCategories {
		if dc.Name == name {
			return dc, true
		}
	}
	return DeviceCategory{}, false
}
