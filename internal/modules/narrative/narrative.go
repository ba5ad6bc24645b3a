// Package narrative derives human-readable profile characteristics and
// product recommendations from computed scores.
package narrative

import (
	"math"

	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

const (
	// GapThreshold is the capacity/willingness spread (1-5 scale) above
	// which the gap is flagged to the user explicitly.
	GapThreshold = 1.0

	// PronouncedBiasThreshold is the answer value at and above which a
	// bias question indicates a pronounced tendency worth a warning.
	PronouncedBiasThreshold = 4
)

// Narrative is the human-facing portion of a risk profile. Downstream
// renderers read both lists verbatim; ordering is deterministic.
type Narrative struct {
	Characteristics     []string `json:"characteristics"`
	RecommendedProducts []string `json:"recommended_products"`
}

// categoryCharacteristics is the fixed opening sentence per category,
// describing time horizon and volatility tolerance.
var categoryCharacteristics = map[scoring.RiskCategory]string{
	scoring.Conservative: "You prioritize capital preservation: a short effective horizon and low " +
		"tolerance for volatility call for a portfolio that rarely fluctuates in value.",
	scoring.ModerateConservative: "You favor stability with some growth: modest fluctuations are acceptable " +
		"over a medium horizon, but drawdowns should stay shallow.",
	scoring.Moderate: "You balance growth and stability: with a medium-to-long horizon you can ride out " +
		"normal market swings in exchange for meaningful long-term returns.",
	scoring.ModerateAggressive: "You are growth-oriented: a long horizon and solid tolerance for volatility " +
		"let equities do most of the work, accepting sizeable interim drawdowns.",
	scoring.Aggressive: "You pursue maximum long-term growth: with a very long horizon and high tolerance " +
		"for volatility, deep temporary drawdowns are an accepted part of the strategy.",
}

// capacityGapWarning flags willingness running ahead of capacity and
// the reverse.
const (
	willingnessAheadWarning = "Your appetite for risk runs well ahead of what your financial situation " +
		"can absorb; the recommendation is capped at what your capacity supports."
	capacityAheadWarning = "Your financial situation could support more risk than you are comfortable " +
		"taking; the recommendation follows your comfort level, not your capacity."
)

// biasWarnings maps each bias-category tag to its advisory sentence.
var biasWarnings = map[string]string{
	questionnaire.BiasLossAversion: "Your answers indicate pronounced loss aversion: beware of selling " +
		"into downturns and of holding losing positions purely to avoid realizing a loss.",
	questionnaire.BiasRecency: "Your answers indicate recency bias: recent performance is a poor guide " +
		"to future returns, so avoid chasing last year's winners.",
	questionnaire.BiasOverconfidence: "Your answers indicate overconfidence: most timing and stock-picking " +
		"attempts underperform a simple buy-and-hold approach.",
	questionnaire.BiasHerding: "Your answers indicate herding: popularity of an investment says nothing " +
		"about its value, and crowded trades reverse sharply.",
	questionnaire.BiasAnchoring: "Your answers indicate anchoring on purchase prices: what you paid is " +
		"irrelevant to whether a position is worth holding today.",
	questionnaire.BiasHomeBias: "Your answers indicate home bias: concentrating in your domestic market " +
		"forfeits diversification that costs nothing to obtain.",
	questionnaire.BiasDisposition: "Your answers indicate the disposition effect: selling winners early " +
		"and riding losers is the reverse of what disciplined rebalancing requires.",
	questionnaire.BiasMentalAccounting: "Your answers indicate mental accounting: money is fungible, and " +
		"separate 'pots' with separate rules usually add risk without adding return.",
	questionnaire.BiasRegretAversion: "Your answers indicate regret aversion: fear of making the wrong " +
		"move often leads to making no move at all, which is itself a decision.",
}

// recommendedProducts is the fixed per-category product list,
// independent of bias.
var recommendedProducts = map[scoring.RiskCategory][]string{
	scoring.Conservative: {
		"Money-market funds",
		"Short-duration government bond funds",
		"Fixed-term deposits",
	},
	scoring.ModerateConservative: {
		"Investment-grade bond funds",
		"Conservative mixed funds (25-40% equities)",
		"Dividend equity funds",
	},
	scoring.Moderate: {
		"Global equity index funds",
		"Balanced mixed funds (50-70% equities)",
		"Aggregate bond funds",
	},
	scoring.ModerateAggressive: {
		"Global equity index funds",
		"Developed-market equity ETFs",
		"Small allocation to emerging-market funds",
	},
	scoring.Aggressive: {
		"Growth equity funds",
		"Sector and thematic ETFs",
		"Emerging-market equity funds",
	},
}

// Narrate assembles the characteristics and product recommendations for
// a classified profile. biasQuestions and answers supply the individual
// bias answers; a value at or above PronouncedBiasThreshold produces
// one warning per bias tag, in catalog order.
func Narrate(
	category scoring.RiskCategory,
	capacity scoring.CategoryScore,
	willingness scoring.CategoryScore,
	biasQuestions []questionnaire.Question,
	answers questionnaire.AnswerSet,
) Narrative {
	characteristics := []string{categoryCharacteristics[category]}

	// Flag a pronounced capacity/willingness spread explicitly so the
	// user understands why the recommendation may feel off from their
	// self-image.
	gap := willingness.NormalizedScore - capacity.NormalizedScore
	if math.Abs(gap) > GapThreshold {
		if gap > 0 {
			characteristics = append(characteristics, willingnessAheadWarning)
		} else {
			characteristics = append(characteristics, capacityAheadWarning)
		}
	}

	// One warning per pronounced bias tag, deduplicated, catalog order.
	seenTags := make(map[string]bool)
	for _, q := range biasQuestions {
		value, ok := answers[q.ID]
		if !ok || value < PronouncedBiasThreshold {
			continue
		}
		if seenTags[q.BiasTag] {
			continue
		}
		seenTags[q.BiasTag] = true
		if warning, ok := biasWarnings[q.BiasTag]; ok {
			characteristics = append(characteristics, warning)
		}
	}

	products := make([]string, len(recommendedProducts[category]))
	copy(products, recommendedProducts[category])

	return Narrative{
		Characteristics:     characteristics,
		RecommendedProducts: products,
	}
}
