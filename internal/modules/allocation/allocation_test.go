package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

func TestAllocate_Closure(t *testing.T) {
	// Every category's allocation must sum to exactly 100
	for _, category := range scoring.Categories() {
		alloc := Allocate(category)
		sum := alloc.Stocks + alloc.Bonds + alloc.Alternatives + alloc.Cash
		assert.Equal(t, 100, sum, "category %s", category)
	}
}

func TestAllocate_PolicyRows(t *testing.T) {
	tests := []struct {
		category scoring.RiskCategory
		expected AssetAllocation
	}{
		{scoring.Conservative, AssetAllocation{Stocks: 20, Bonds: 60, Alternatives: 0, Cash: 20}},
		{scoring.ModerateConservative, AssetAllocation{Stocks: 40, Bonds: 50, Alternatives: 0, Cash: 10}},
		{scoring.Moderate, AssetAllocation{Stocks: 60, Bonds: 35, Alternatives: 5, Cash: 0}},
		{scoring.ModerateAggressive, AssetAllocation{Stocks: 75, Bonds: 20, Alternatives: 5, Cash: 0}},
		{scoring.Aggressive, AssetAllocation{Stocks: 90, Bonds: 5, Alternatives: 5, Cash: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Allocate(tt.category))
		})
	}
}

func TestAllocate_StockShareIncreasesWithRisk(t *testing.T) {
	// The equity leg must be strictly increasing across the ordered categories
	categories := scoring.Categories()
	for i := 1; i < len(categories); i++ {
		prev := Allocate(categories[i-1])
		curr := Allocate(categories[i])
		assert.Greater(t, curr.Stocks, prev.Stocks,
			"%s should hold more stocks than %s", categories[i], categories[i-1])
	}
}

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable())
}
