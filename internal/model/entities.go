package model

import "time"

// GPO is a group purchasing organization: it negotiates contracts on
// behalf of member networks and collects an admin fee on invoice amounts.
type GPO struct {
	GPOID       string
	Name        string
	AdminFeePct float64
	MemberCount int
}

// IDN is an integrated delivery network, the customer entity owning one
// or more facilities. GPOID is empty for independent networks.
type IDN struct {
	IDNID         string
	Name          string
	GPOID         string
	FacilityCount int
	AnnualSpend   int64
	Region        string
	State         string
	Tier          string // Large, Medium, Small
}

// Facility is a single physical site under an IDN.
type Facility struct {
	FacilityID   string
	IDNID        string
	Name         string
	FacilityType string // Hospital, ASC, Clinic
	BedCount     int
	State        string
	Region       string
}

// Product is a catalog entry. Cost is strictly below ListPrice.
type Product struct {
	ProductID string
	Name      string
	Category  string
	ListPrice float64
	Cost      float64
	SKU       string
}

// Contract is a negotiated agreement between an IDN and (through the
// IDN's affiliation) optionally a GPO. GPOID is empty when the network
// is independent.
type Contract struct {
	ContractID            string
	IDNID                 string
	GPOID                 string
	DealStructure         string
	DeviceCategory        string
	StartDate             time.Time
	EndDate               time.Time
	DurationMonths        int
	BaseDiscountPct       float64
	MarketShareCommitment float64
	Status                string // Active, Renewed, Expired, Pending
	AnnualVolumeTarget    int
	SafeHarborCompliant   bool
	AKSRiskFlag           string // Low, Medium, High
}

// Transactable reports whether transactions may reference this contract.
func (c *Contract) Transactable() bool {
	return c.Status == "Active" || c.Status == "Renewed"
}

// RebateProgram is a post-sale incentive attached to a contract.
// Earned is decided at generation time, not derived from transaction
// volume; the waterfall only sums percentages of earned programs.
type RebateProgram struct {
	RebateID         string
	ContractID       string
	RebateType       string
	RebatePct        float64
	TriggerType      string
	TriggerThreshold float64
	Orientation      string // Offensive, Defensive
	Earned           bool
}

// Transaction is the fact record carrying the full pricing waterfall.
// Monetary fields stay unrounded float64 until persistence.
type Transaction struct {
	TransactionID string
	ContractID    string
	IDNID         string
	GPOID         string
	ProductID     string
	Date          time.Time
	Quantity      int

	ListPrice        float64
	InvoicePrice     float64
	GPOAdminFee      float64
	RebateAmount     float64
	LowestNetPrice   float64
	UnitCost         float64
	Margin           float64
	MarginPct        float64
	TotalDiscountPct float64

	DealStructure  string
	DeviceCategory string
	Region         string
	IDNTier        string
	AtRisk         bool

	Quarter string
	Year    int
	Month   int
}

// Dataset is one complete generation run, in dependency order.
type Dataset struct {
	GPOs           []GPO
	IDNs           []IDN
	Facilities     []Facility
	Products       []Product
	Contracts      []Contract
	RebatePrograms []RebateProgram
	Transactions   []Transaction
}
