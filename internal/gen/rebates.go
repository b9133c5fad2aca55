package gen

import (
	"fmt"
	"math/rand"

	"github.com/copperbi/coppergen/internal/model"
)

var rebateCountChoices = []int{1, 2, 3}
var rebateCountWeights = []float64{0.3, 0.5, 0.2}

// earnedRate is the probability a program's trigger is deemed met.
// Earn status is a generated contract-level attribute, not something
// recomputed from transaction volume; the waterfall only sums the
// percentages of earned programs.
const earnedRate = 0.65

// GenerateRebatePrograms attaches 1-3 programs of distinct types to each
// contract, each with the percentage band and trigger shape of its type.
func GenerateRebatePrograms(r *rand.Rand, contracts []model.Contract) []model.RebateProgram {
	var rebates []model.RebateProgram
	rebateID := 1
	for _, contract := range contracts {
		count := rebateCountChoices[weightedIndex(r, rebateCountWeights)]
		for _, ti := range r.Perm(len(model.AllRebateTypes))[:count] {
			rt := model.AllRebateTypes[ti]
			orientation := "Defensive"
			if chance(r, 0.4) {
				orientation = "Offensive"
			}
			rebates = append(rebates, model.RebateProgram{
				RebateID:         fmt.Sprintf("REB-%04d", rebateID),
				ContractID:       contract.ContractID,
				RebateType:       rt.Name,
				RebatePct:        uniform(r, rt.PctLo, rt.PctHi),
				TriggerType:      rt.Trigger,
				TriggerThreshold: uniform(r, 0.5, 0.9),
				Orientation:      orientation,
				Earned:           chance(r, earnedRate),
			})
			rebateID++
		}
	}
	return rebates
}
