package gen

import (
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/copperbi/coppergen/internal/model"
)

// Geography vocabulary shared by networks and facilities.
var regions = []string{"Northeast", "Southeast", "Midwest", "West", "Southwest"}

var statesByRegion = map[string][]string{
	"Northeast": {"NY", "NJ", "PA", "CT", "MA"},
	"Southeast": {"FL", "GA", "NC", "VA", "TN"},
	"Midwest":   {"IL", "OH", "MI", "IN", "WI"},
	"West":      {"CA", "WA", "OR", "CO", "AZ"},
	"Southwest": {"TX", "OK", "NM", "LA", "AR"},
}

// Well-known GPO names used first; extra organizations get synthesized
// alliance names.
var gpoNames = []string{"Vizient", "Premier", "HealthTrust", "Intalere", "HPG"}

// independentNetworkShare is the fraction of networks with no GPO
// affiliation; their contracts carry a zero admin fee.
const independentNetworkShare = 0.10

// GenerateGPOs produces n purchasing organizations with admin fees in
// the customary 1.5-3% band and heavy-tailed member counts.
func GenerateGPOs(r *rand.Rand, f *gofakeit.Faker, n int) []model.GPO {
	gpos := make([]model.GPO, 0, n)
	for i := 0; i < n; i++ {
		name := ""
		if i < len(gpoNames) {
			name = gpoNames[i]
		} else {
			name = fmt.Sprintf("%s Purchasing Alliance", f.LastName())
		}
		gpos = append(gpos, model.GPO{
			GPOID:       fmt.Sprintf("GPO-%03d", i+1),
			Name:        name,
			AdminFeePct: uniform(r, 0.015, 0.03),
			MemberCount: logNormalInt(r, 7.5, 0.6, 300, 6000),
		})
	}
	return gpos
}

// GenerateIDNs produces n customer networks. Facility counts follow a
// clipped log-normal so a handful of systems own most facilities; the
// floor of 2 guarantees no network exists without facilities. GPO
// assignment is weighted by member count, with a small independent share.
func GenerateIDNs(r *rand.Rand, f *gofakeit.Faker, gpos []model.GPO, n int) []model.IDN {
	gpoWeights := make([]float64, len(gpos))
	for i, g := range gpos {
		gpoWeights[i] = float64(g.MemberCount)
	}

	seen := make(map[string]bool, n)
	idns := make([]model.IDN, 0, n)
	for i := 0; i < n; i++ {
		name := networkName(r, f)
		for attempt := 0; seen[name] && attempt < 20; attempt++ {
			name = networkName(r, f)
		}
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}
		seen[name] = true

		size := logNormalInt(r, 2.5, 0.8, 2, 180)
		tier := "Small"
		switch {
		case size > 30:
			tier = "Large"
		case size > 10:
			tier = "Medium"
		}

		gpoID := ""
		if !chance(r, independentNetworkShare) {
			gpoID = gpos[weightedIndex(r, gpoWeights)].GPOID
		}

		region := regions[r.Intn(len(regions))]
		states := statesByRegion[region]

		idns = append(idns, model.IDN{
			IDNID:         fmt.Sprintf("IDN-%03d", i+1),
			Name:          name,
			GPOID:         gpoID,
			FacilityCount: size,
			AnnualSpend:   int64(float64(size) * uniform(r, 2_000_000, 8_000_000)),
			Region:        region,
			State:         states[r.Intn(len(states))],
			Tier:          tier,
		})
	}
	return idns
}

func networkName(r *rand.Rand, f *gofakeit.Faker) string {
	switch r.Intn(4) {
	case 0:
		return fmt.Sprintf("%s Health System", f.City())
	case 1:
		return fmt.Sprintf("St. %s Medical Center", f.FirstName())
	case 2:
		return fmt.Sprintf("%s Regional Health", f.LastName())
	default:
		return fmt.Sprintf("%s Memorial Healthcare", f.City())
	}
}

var facilityTypes = []string{"Hospital", "ASC", "Clinic"}
var facilityTypeWeights = []float64{0.5, 0.3, 0.2}

// GenerateFacilities expands each network into its FacilityCount sites.
func GenerateFacilities(r *rand.Rand, f *gofakeit.Faker, idns []model.IDN) []model.Facility {
	var facilities []model.Facility
	facID := 1
	for _, idn := range idns {
		for j := 0; j < idn.FacilityCount; j++ {
			facType := facilityTypes[weightedIndex(r, facilityTypeWeights)]
			beds := 0
			switch facType {
			case "Hospital":
				beds = 50 + r.Intn(750)
			case "ASC":
				beds = 4 + r.Intn(16)
			}
			facilities = append(facilities, model.Facility{
				FacilityID:   fmt.Sprintf("FAC-%05d", facID),
				IDNID:        idn.IDNID,
				Name:         fmt.Sprintf("%s - %s %s", idn.Name, f.City(), facType),
				FacilityType: facType,
				BedCount:     beds,
				State:        idn.State,
				Region:       idn.Region,
			})
			facID++
		}
	}
	return facilities
}
