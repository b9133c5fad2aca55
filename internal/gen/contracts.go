package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/model"
)

// Contract lifecycle buckets. The mix of buckets is configuration, not
// accident: expired and expiring-soon contracts feed the at-risk views.
const (
	bucketActive = iota
	bucketExpiringSoon
	bucketExpired
	bucketPending
)

// expiringSoonWindow is how close to the as-of date a contract's end
// must fall to count as expiring soon.
const expiringSoonWindow = 90 // days

var durationMonthsChoices = []int{12, 24, 36}
var durationMonthsWeights = []float64{0.3, 0.5, 0.2}

// GenerateContracts produces n contracts. The first len(idns) contracts
// cover each network once so no network is contract-less; the remainder
// pick networks at random. Tier determines the discount band, commitment
// band, and risk-flag weighting.
func GenerateContracts(r *rand.Rand, idns []model.IDN, n int, asOf time.Time, mix config.StatusMix) []model.Contract {
	tierWeights := make([]float64, len(model.AllDealStructures))
	for i, ds := range model.AllDealStructures {
		tierWeights[i] = ds.Weight
	}
	bucketWeights := []float64{mix.Active, mix.ExpiringSoon, mix.Expired, mix.Pending}

	contracts := make([]model.Contract, 0, n)
	for i := 0; i < n; i++ {
		idn := idns[r.Intn(len(idns))]
		if i < len(idns) {
			idn = idns[i]
		}
		tier := model.AllDealStructures[weightedIndex(r, tierWeights)]
		cat := model.AllDeviceCategories[r.Intn(len(model.AllDeviceCategories))]

		durMonths := durationMonthsChoices[weightedIndex(r, durationMonthsWeights)]
		durDays := durMonths * 30
		start, end := contractDates(r, asOf, weightedIndex(r, bucketWeights), durDays)

		status := "Active"
		switch {
		case end.Before(asOf):
			if chance(r, 0.4) {
				status = "Expired"
			} else {
				status = "Renewed"
			}
		case start.After(asOf):
			status = "Pending"
		}

		share := 0.0
		if tier.ShareHi > 0 {
			share = uniform(r, tier.ShareLo, tier.ShareHi)
		}

		contracts = append(contracts, model.Contract{
			ContractID:            fmt.Sprintf("CTR-%04d", i+1),
			IDNID:                 idn.IDNID,
			GPOID:                 idn.GPOID,
			DealStructure:         tier.Name,
			DeviceCategory:        cat.Name,
			StartDate:             start,
			EndDate:               end,
			DurationMonths:        durMonths,
			BaseDiscountPct:       uniform(r, tier.DiscountLo, tier.DiscountHi),
			MarketShareCommitment: share,
			Status:                status,
			AnnualVolumeTarget:    100 + r.Intn(4900),
			SafeHarborCompliant:   chance(r, 0.92),
			AKSRiskFlag:           model.RiskFlags[weightedIndex(r, tier.RiskWeights[:])],
		})
	}
	return contracts
}

// contractDates constructs a start/end pair whose relation to the as-of
// date realizes the requested lifecycle bucket.
func contractDates(r *rand.Rand, asOf time.Time, bucket, durDays int) (time.Time, time.Time) {
	var end time.Time
	switch bucket {
	case bucketExpired:
		end = asOf.AddDate(0, 0, -(1 + r.Intn(720)))
	case bucketExpiringSoon:
		end = asOf.AddDate(0, 0, 1+r.Intn(expiringSoonWindow))
	case bucketPending:
		start := asOf.AddDate(0, 0, 1+r.Intn(180))
		return start, start.AddDate(0, 0, durDays)
	default:
		// Active beyond the expiring window, with start still in the past.
		end = asOf.AddDate(0, 0, expiringSoonWindow+1+r.Intn(durDays-expiringSoonWindow-60))
	}
	return end.AddDate(0, 0, -durDays), end
}
