// Package profile assembles questionnaire answers into a complete risk
// profile and manages its persistence.
package profile

import (
	"fmt"

	"github.com/clearpath-invest/profiler/internal/modules/allocation"
	"github.com/clearpath-invest/profiler/internal/modules/narrative"
	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

// RiskProfileResult is the complete, immutable outcome of one
// assessment. It is a value: never mutated, only replaced wholesale
// when the user retakes the questionnaire.
type RiskProfileResult struct {
	CatalogVersion      string                     `json:"catalog_version"`
	CapacityScore       scoring.CategoryScore      `json:"capacity_score"`
	WillingnessScore    scoring.CategoryScore      `json:"willingness_score"`
	BiasScore           scoring.CategoryScore      `json:"bias_score"`
	FinalScore          float64                    `json:"final_score"`
	Category            scoring.RiskCategory       `json:"category"`
	AssetAllocation     allocation.AssetAllocation `json:"asset_allocation"`
	Characteristics     []string                   `json:"characteristics"`
	RecommendedProducts []string                   `json:"recommended_products"`
}

// ComputeRiskProfile converts a complete answer set into a risk profile.
// It is the only entry point external callers use; scoring,
// classification, allocation and narrative stay internal.
//
// The computation is a pure function of (catalog, answers): identical
// inputs always produce identical results.
func ComputeRiskProfile(catalog *questionnaire.Catalog, answers questionnaire.AnswerSet) (*RiskProfileResult, error) {
	// Fail fast on structural defects before any scoring runs.
	if len(catalog.Capacity) == 0 || len(catalog.Willingness) == 0 || len(catalog.Bias) == 0 {
		return nil, fmt.Errorf("catalog has an empty category: %w", scoring.ErrDegenerateCatalog)
	}
	for _, q := range catalog.Questions() {
		if _, ok := answers[q.ID]; !ok {
			return nil, &scoring.MissingAnswerError{QuestionID: q.ID}
		}
	}

	capacityScore, err := scoring.ScoreCategory(catalog.Capacity, answers)
	if err != nil {
		return nil, fmt.Errorf("capacity scoring failed: %w", err)
	}

	willingnessScore, err := scoring.ScoreCategory(catalog.Willingness, answers)
	if err != nil {
		return nil, fmt.Errorf("willingness scoring failed: %w", err)
	}

	biasScore, err := scoring.ScoreCategory(catalog.Bias, answers)
	if err != nil {
		return nil, fmt.Errorf("bias scoring failed: %w", err)
	}

	classification := scoring.Classify(capacityScore, willingnessScore)
	assetAllocation := allocation.Allocate(classification.Category)
	story := narrative.Narrate(classification.Category, capacityScore, willingnessScore, catalog.Bias, answers)

	return &RiskProfileResult{
		CatalogVersion:      catalog.Version,
		CapacityScore:       capacityScore,
		WillingnessScore:    willingnessScore,
		BiasScore:           biasScore,
		FinalScore:          classification.FinalScore,
		Category:            classification.Category,
		AssetAllocation:     assetAllocation,
		Characteristics:     story.Characteristics,
		RecommendedProducts: story.RecommendedProducts,
	}, nil
}
