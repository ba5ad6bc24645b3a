package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// score builds a CategoryScore with the given normalized value
func score(normalized float64) CategoryScore {
	return CategoryScore{
		RawScore:        normalized * 10,
		MaxPossible:     50,
		NormalizedScore: normalized,
	}
}

func TestClassify_ConservativeCeiling(t *testing.T) {
	tests := []struct {
		name             string
		capacity         float64
		willingness      float64
		expectedScore    float64
		expectedCategory RiskCategory
	}{
		{
			name:             "balanced mid-scale",
			capacity:         3.00,
			willingness:      3.00,
			expectedScore:    3.00,
			expectedCategory: Moderate,
		},
		{
			name:             "maximal willingness capped by minimal capacity",
			capacity:         1.00,
			willingness:      5.00,
			expectedScore:    1.50,
			expectedCategory: Conservative,
		},
		{
			name:             "both maximal",
			capacity:         5.00,
			willingness:      5.00,
			expectedScore:    5.00,
			expectedCategory: Aggressive,
		},
		{
			name:             "willingness marginally ahead uses slack",
			capacity:         3.00,
			willingness:      3.40,
			expectedScore:    3.40,
			expectedCategory: ModerateAggressive,
		},
		{
			name:             "willingness below capacity wins",
			capacity:         4.50,
			willingness:      2.00,
			expectedScore:    2.00,
			expectedCategory: ModerateConservative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(score(tt.capacity), score(tt.willingness))

			assert.Equal(t, tt.expectedScore, result.FinalScore)
			assert.Equal(t, tt.expectedCategory, result.Category)
		})
	}
}

func TestClassify_CeilingNeverExceeded(t *testing.T) {
	// For any capacity/willingness pair on a 0.25 grid, the final score
	// must never exceed capacity + slack.
	for capacity := 1.0; capacity <= 5.0; capacity += 0.25 {
		for willingness := 1.0; willingness <= 5.0; willingness += 0.25 {
			result := Classify(score(capacity), score(willingness))
			assert.LessOrEqual(t, result.FinalScore, capacity+CapacitySlack+1e-9,
				"capacity=%.2f willingness=%.2f", capacity, willingness)
			assert.GreaterOrEqual(t, result.FinalScore, 1.0)
			assert.LessOrEqual(t, result.FinalScore, 5.0)
		}
	}
}

func TestCategoryForScore_Bands(t *testing.T) {
	tests := []struct {
		score    float64
		expected RiskCategory
	}{
		{1.00, Conservative},
		{1.79, Conservative},
		{1.80, ModerateConservative}, // lower edge inclusive
		{2.59, ModerateConservative},
		{2.60, Moderate},
		{3.39, Moderate},
		{3.40, ModerateAggressive},
		{4.19, ModerateAggressive},
		{4.20, Aggressive}, // exactly 4.2 is Aggressive, not ModerateAggressive
		{5.00, Aggressive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, categoryForScore(tt.score), "score %.2f", tt.score)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	// Increasing either input while holding the other fixed never
	// decreases the final score or moves the category down a band.
	grid := []float64{1.0, 1.5, 1.8, 2.2, 2.6, 3.0, 3.4, 3.9, 4.2, 4.7, 5.0}

	for _, fixed := range grid {
		var prev Classification
		for i, moving := range grid {
			result := Classify(score(moving), score(fixed))
			if i > 0 {
				assert.GreaterOrEqual(t, result.FinalScore, prev.FinalScore,
					"capacity %.2f -> %.2f at willingness %.2f", grid[i-1], moving, fixed)
				assert.GreaterOrEqual(t, int(result.Category), int(prev.Category))
			}
			prev = result
		}

		for i, moving := range grid {
			result := Classify(score(fixed), score(moving))
			if i > 0 {
				assert.GreaterOrEqual(t, result.FinalScore, prev.FinalScore,
					"willingness %.2f -> %.2f at capacity %.2f", grid[i-1], moving, fixed)
				assert.GreaterOrEqual(t, int(result.Category), int(prev.Category))
			}
			prev = result
		}
	}
}

func TestRiskCategory_String(t *testing.T) {
	assert.Equal(t, "conservative", Conservative.String())
	assert.Equal(t, "moderate_conservative", ModerateConservative.String())
	assert.Equal(t, "moderate", Moderate.String())
	assert.Equal(t, "moderate_aggressive", ModerateAggressive.String())
	assert.Equal(t, "aggressive", Aggressive.String())
}

func TestRiskCategory_TextRoundTrip(t *testing.T) {
	for _, category := range Categories() {
		text, err := category.MarshalText()
		assert.NoError(t, err)

		var decoded RiskCategory
		assert.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, category, decoded)
	}

	var invalid RiskCategory
	assert.Error(t, invalid.UnmarshalText([]byte("reckless")))
}
