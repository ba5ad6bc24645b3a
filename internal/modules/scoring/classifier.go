package scoring

import (
	"fmt"
	"math"
)

// RiskCategory is one of five ordered risk appetite bands.
type RiskCategory int

const (
	Conservative RiskCategory = iota
	ModerateConservative
	Moderate
	ModerateAggressive
	Aggressive
)

// String returns the category identifier used in API payloads and storage.
func (c RiskCategory) String() string {
	switch c {
	case Conservative:
		return "conservative"
	case ModerateConservative:
		return "moderate_conservative"
	case Moderate:
		return "moderate"
	case ModerateAggressive:
		return "moderate_aggressive"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so the category
// serializes as its string form in JSON.
func (c RiskCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for reading stored
// profiles back.
func (c *RiskCategory) UnmarshalText(text []byte) error {
	switch string(text) {
	case "conservative":
		*c = Conservative
	case "moderate_conservative":
		*c = ModerateConservative
	case "moderate":
		*c = Moderate
	case "moderate_aggressive":
		*c = ModerateAggressive
	case "aggressive":
		*c = Aggressive
	default:
		return fmt.Errorf("unknown risk category %q", text)
	}
	return nil
}

// Categories returns all risk categories in ascending risk order.
func Categories() []RiskCategory {
	return []RiskCategory{Conservative, ModerateConservative, Moderate, ModerateAggressive, Aggressive}
}

// Classification is the combined result of capacity and willingness.
type Classification struct {
	FinalScore float64      `json:"final_score"`
	Category   RiskCategory `json:"category"`
}

// Classify combines capacity and willingness into the final score and
// risk category.
//
// The combination is a conservative ceiling, not an average: willingness
// may never push the final score more than CapacitySlack beyond what
// financial capacity objectively sustains. The behavioral-bias score is
// deliberately excluded; it only produces advisory narrative warnings.
//
// Classify is monotonic in both inputs: raising either score never
// lowers the final score or the category.
func Classify(capacity, willingness CategoryScore) Classification {
	finalScore := math.Min(willingness.NormalizedScore, capacity.NormalizedScore+CapacitySlack)
	finalScore = round2(finalScore)

	return Classification{
		FinalScore: finalScore,
		Category:   categoryForScore(finalScore),
	}
}

// categoryForScore maps a final score to its risk band. Bands are
// inclusive on the lower edge.
func categoryForScore(score float64) RiskCategory {
	switch {
	case score < BandModerateConservative:
		return Conservative
	case score < BandModerate:
		return ModerateConservative
	case score < BandModerateAggressive:
		return Moderate
	case score < BandAggressive:
		return ModerateAggressive
	default:
		return Aggressive
	}
}
