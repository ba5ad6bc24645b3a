// Package allocation maps risk categories to target asset allocations.
package allocation

import (
	"fmt"

	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

// AssetAllocation is a target portfolio split in whole percentage
// points. The four legs always sum to exactly 100.
type AssetAllocation struct {
	Stocks       int `json:"stocks"`
	Bonds        int `json:"bonds"`
	Alternatives int `json:"alternatives"`
	Cash         int `json:"cash"`
}

// targets is the authoritative allocation policy table, one row per
// risk category. It is a table rather than a formula so policy can
// revise it without touching the scoring math.
var targets = map[scoring.RiskCategory]AssetAllocation{
	scoring.Conservative:         {Stocks: 20, Bonds: 60, Alternatives: 0, Cash: 20},
	scoring.ModerateConservative: {Stocks: 40, Bonds: 50, Alternatives: 0, Cash: 10},
	scoring.Moderate:             {Stocks: 60, Bonds: 35, Alternatives: 5, Cash: 0},
	scoring.ModerateAggressive:   {Stocks: 75, Bonds: 20, Alternatives: 5, Cash: 0},
	scoring.Aggressive:           {Stocks: 90, Bonds: 5, Alternatives: 5, Cash: 0},
}

// Allocate returns the target allocation for a risk category.
func Allocate(category scoring.RiskCategory) AssetAllocation {
	return targets[category]
}

// ValidateTable checks that every category has an allocation row
// summing to exactly 100. Run once at startup; a failure is a
// configuration defect and fatal.
func ValidateTable() error {
	for _, category := range scoring.Categories() {
		row, ok := targets[category]
		if !ok {
			return fmt.Errorf("allocation table has no row for category %s", category)
		}
		sum := row.Stocks + row.Bonds + row.Alternatives + row.Cash
		if sum != 100 {
			return fmt.Errorf("allocation row for %s sums to %d, expected 100", category, sum)
		}
		if row.Stocks < 0 || row.Bonds < 0 || row.Alternatives < 0 || row.Cash < 0 {
			return fmt.Errorf("allocation row for %s has a negative leg", category)
		}
	}
	return nil
}
