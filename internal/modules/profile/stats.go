package profile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AggregateStats summarizes the final-score distribution across all
// users' latest profiles for one catalog version. Advisor-facing; not
// part of any individual profile.
type AggregateStats struct {
	Count         int            `json:"count"`
	MeanScore     float64        `json:"mean_score"`
	StdDevScore   float64        `json:"stddev_score"`
	MedianScore   float64        `json:"median_score"`
	P25Score      float64        `json:"p25_score"`
	P75Score      float64        `json:"p75_score"`
	CategoryCount map[string]int `json:"category_count"`
}

// ComputeAggregateStats summarizes score distribution for a catalog
// version using the latest profile per user.
func (r *Repository) ComputeAggregateStats(catalogVersion string) (*AggregateStats, error) {
	scores, categoryCounts, err := r.FinalScores(catalogVersion)
	if err != nil {
		return nil, err
	}

	stats := &AggregateStats{
		Count:         len(scores),
		CategoryCount: categoryCounts,
	}
	if len(scores) == 0 {
		return stats, nil
	}

	sort.Float64s(scores)

	stats.MeanScore = round2(stat.Mean(scores, nil))
	if len(scores) > 1 {
		stats.StdDevScore = round2(stat.StdDev(scores, nil))
	}
	stats.MedianScore = round2(stat.Quantile(0.5, stat.Empirical, scores, nil))
	stats.P25Score = round2(stat.Quantile(0.25, stat.Empirical, scores, nil))
	stats.P75Score = round2(stat.Quantile(0.75, stat.Empirical, scores, nil))

	return stats, nil
}

// round2 rounds to 2 decimal places
func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
