// Package scoring reduces questionnaire answers to category scores and
// classifies the combined result into a risk category.
package scoring

import (
	"math"

	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
)

// CategoryScore is the weighted, normalized score of one question
// category on the 1-5 scale.
type CategoryScore struct {
	RawScore        float64 `json:"raw_score"`        // Σ answer × weight
	MaxPossible     float64 `json:"max_possible"`     // Σ 5 × weight
	NormalizedScore float64 `json:"normalized_score"` // raw/max × 5, rounded to 2 decimals
}

// ScoreCategory reduces the answers for one question set into a single
// CategoryScore. Every question must have an answer; the first omission
// found (in catalog order) is reported as a MissingAnswerError.
func ScoreCategory(questions []questionnaire.Question, answers questionnaire.AnswerSet) (CategoryScore, error) {
	var rawScore, maxPossible float64

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			return CategoryScore{}, &MissingAnswerError{QuestionID: q.ID}
		}
		rawScore += float64(value) * q.Weight
		maxPossible += MaxOptionValue * q.Weight
	}

	if maxPossible == 0 {
		return CategoryScore{}, ErrDegenerateCatalog
	}

	return CategoryScore{
		RawScore:        rawScore,
		MaxPossible:     maxPossible,
		NormalizedScore: round2(rawScore / maxPossible * MaxOptionValue),
	}, nil
}

// round2 rounds to 2 decimal places
func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
