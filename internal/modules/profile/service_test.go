package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-invest/profiler/internal/modules/allocation"
	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

// completeAnswers answers every catalog question with the given values
// per category.
func completeAnswers(catalog *questionnaire.Catalog, capacity, willingness, bias int) questionnaire.AnswerSet {
	answers := make(questionnaire.AnswerSet, 30)
	for _, q := range catalog.Capacity {
		answers[q.ID] = capacity
	}
	for _, q := range catalog.Willingness {
		answers[q.ID] = willingness
	}
	for _, q := range catalog.Bias {
		answers[q.ID] = bias
	}
	return answers
}

func TestComputeRiskProfile_MidScaleModerate(t *testing.T) {
	// All capacity and willingness answers at 3 -> both scores 3.00,
	// final 3.00, Moderate, 60/35/5/0.
	catalog := questionnaire.Default()
	result, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 3, 3, 1))
	require.NoError(t, err)

	assert.Equal(t, 3.00, result.CapacityScore.NormalizedScore)
	assert.Equal(t, 3.00, result.WillingnessScore.NormalizedScore)
	assert.Equal(t, 3.00, result.FinalScore)
	assert.Equal(t, scoring.Moderate, result.Category)
	assert.Equal(t, allocation.AssetAllocation{Stocks: 60, Bonds: 35, Alternatives: 5, Cash: 0}, result.AssetAllocation)
	assert.Equal(t, questionnaire.Version, result.CatalogVersion)
}

func TestComputeRiskProfile_WillingnessCappedByCapacity(t *testing.T) {
	// Minimal capacity, maximal willingness: the conservative ceiling
	// caps the final score at 1.50 -> Conservative despite appetite.
	catalog := questionnaire.Default()
	result, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 1, 5, 1))
	require.NoError(t, err)

	assert.Equal(t, 1.00, result.CapacityScore.NormalizedScore)
	assert.Equal(t, 5.00, result.WillingnessScore.NormalizedScore)
	assert.Equal(t, 1.50, result.FinalScore)
	assert.Equal(t, scoring.Conservative, result.Category)

	// The gap between appetite and capacity must be called out
	assert.Greater(t, len(result.Characteristics), 1)
}

func TestComputeRiskProfile_MaximalAggressive(t *testing.T) {
	catalog := questionnaire.Default()
	result, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 5, 5, 1))
	require.NoError(t, err)

	assert.Equal(t, 5.00, result.FinalScore)
	assert.Equal(t, scoring.Aggressive, result.Category)
	assert.Equal(t, allocation.AssetAllocation{Stocks: 90, Bonds: 5, Alternatives: 5, Cash: 0}, result.AssetAllocation)
}

func TestComputeRiskProfile_MissingAnswerRejected(t *testing.T) {
	// Omitting the fifth capacity question fails with an error naming it
	catalog := questionnaire.Default()
	answers := completeAnswers(catalog, 3, 3, 3)
	missingID := catalog.Capacity[4].ID
	delete(answers, missingID)

	result, err := ComputeRiskProfile(catalog, answers)
	require.Error(t, err)
	assert.Nil(t, result, "no partial result on rejection")

	var missing *scoring.MissingAnswerError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, missingID, missing.QuestionID)
}

func TestComputeRiskProfile_EmptyCatalogRejected(t *testing.T) {
	catalog := questionnaire.Default()
	catalog.Bias = nil

	_, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 3, 3, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, scoring.ErrDegenerateCatalog)
}

func TestComputeRiskProfile_Deterministic(t *testing.T) {
	catalog := questionnaire.Default()
	answers := completeAnswers(catalog, 4, 2, 5)

	first, err := ComputeRiskProfile(catalog, answers)
	require.NoError(t, err)
	second, err := ComputeRiskProfile(catalog, answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeRiskProfile_ScoreBounds(t *testing.T) {
	catalog := questionnaire.Default()

	for capacity := 1; capacity <= 5; capacity++ {
		for willingness := 1; willingness <= 5; willingness++ {
			result, err := ComputeRiskProfile(catalog, completeAnswers(catalog, capacity, willingness, 3))
			require.NoError(t, err)

			for name, s := range map[string]float64{
				"capacity":    result.CapacityScore.NormalizedScore,
				"willingness": result.WillingnessScore.NormalizedScore,
				"bias":        result.BiasScore.NormalizedScore,
				"final":       result.FinalScore,
			} {
				assert.GreaterOrEqual(t, s, 1.0, "%s score, cap=%d will=%d", name, capacity, willingness)
				assert.LessOrEqual(t, s, 5.0, "%s score, cap=%d will=%d", name, capacity, willingness)
			}

			// Conservative ceiling holds end to end
			assert.LessOrEqual(t, result.FinalScore,
				result.CapacityScore.NormalizedScore+scoring.CapacitySlack+1e-9)

			// Allocation closure holds end to end
			alloc := result.AssetAllocation
			assert.Equal(t, 100, alloc.Stocks+alloc.Bonds+alloc.Alternatives+alloc.Cash)
		}
	}
}

func TestComputeRiskProfile_BiasIsAdvisoryOnly(t *testing.T) {
	// Changing only bias answers must not move the numeric outcome,
	// only the narrative.
	catalog := questionnaire.Default()

	lowBias, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 4, 4, 1))
	require.NoError(t, err)
	highBias, err := ComputeRiskProfile(catalog, completeAnswers(catalog, 4, 4, 5))
	require.NoError(t, err)

	assert.Equal(t, lowBias.FinalScore, highBias.FinalScore)
	assert.Equal(t, lowBias.Category, highBias.Category)
	assert.Equal(t, lowBias.AssetAllocation, highBias.AssetAllocation)
	assert.NotEqual(t, lowBias.BiasScore, highBias.BiasScore)
	assert.Greater(t, len(highBias.Characteristics), len(lowBias.Characteristics),
		"pronounced biases should add advisory warnings")
}
