package questionnaire

// Bias-category tags. Multiple questions may probe the same tendency;
// the narrative layer deduplicates warnings by tag.
const (
	BiasLossAversion     = "loss_aversion"
	BiasRecency          = "recency"
	BiasOverconfidence   = "overconfidence"
	BiasHerding          = "herding"
	BiasAnchoring        = "anchoring"
	BiasHomeBias         = "home_bias"
	BiasDisposition      = "disposition"
	BiasMentalAccounting = "mental_accounting"
	BiasRegretAversion   = "regret_aversion"
)

// biasQuestions probe behavioral tendencies. Unlike capacity and
// willingness, higher values indicate a stronger (more harmful) bias.
// The bias score never feeds the numeric classification; pronounced
// answers only produce advisory warnings in the narrative.
var biasQuestions = []Question{
	{
		ID:       "bias_loss_pain",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasLossAversion,
		Options: scale(
			"A loss and a gain of equal size feel the same",
			"Losses feel slightly worse",
			"Losses feel noticeably worse",
			"Losses feel much worse",
			"Losses feel unbearable compared to gains",
		),
	},
	{
		ID:       "bias_realize_loss",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasLossAversion,
		Options: scale(
			"I sell losing positions without hesitation",
			"I sell losers after brief reflection",
			"I sometimes delay selling losers",
			"I usually hold losers hoping they recover",
			"I almost never sell at a loss",
		),
	},
	{
		ID:       "bias_recent_returns",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasRecency,
		Options: scale(
			"Recent performance tells me nothing about the future",
			"I note recent performance but discount it",
			"Recent performance influences me somewhat",
			"I prefer whatever has done well lately",
			"I invest almost entirely based on recent winners",
		),
	},
	{
		ID:       "bias_market_timing",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasOverconfidence,
		Options: scale(
			"I cannot time the market and do not try",
			"I rarely try to time entries",
			"I sometimes act on my market view",
			"I often trade on my market view",
			"I am confident I can beat the market by timing it",
		),
	},
	{
		ID:       "bias_skill_estimate",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasOverconfidence,
		Options: scale(
			"I am probably a below-average investor",
			"I am about average",
			"I am somewhat above average",
			"I am clearly above average",
			"I am among the best investors I know",
		),
	},
	{
		ID:       "bias_follow_crowd",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasHerding,
		Options: scale(
			"Popularity of an investment is irrelevant to me",
			"I rarely consider what others are buying",
			"I take note when everyone buys something",
			"I feel uneasy staying out of popular trades",
			"I buy what everyone around me is buying",
		),
	},
	{
		ID:       "bias_purchase_price",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasAnchoring,
		Options: scale(
			"My purchase price is irrelevant to decisions",
			"I rarely think about my entry price",
			"I sometimes wait to 'get back to even'",
			"I usually wait to 'get back to even' before selling",
			"I refuse to sell below my purchase price",
		),
	},
	{
		ID:       "bias_domestic_preference",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasHomeBias,
		Options: scale(
			"I invest globally without home preference",
			"Mostly global, slight home tilt",
			"Roughly half in my home market",
			"Mostly in my home market",
			"I only trust companies from my home market",
		),
	},
	{
		ID:       "bias_sell_winners",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasDisposition,
		Options: scale(
			"I hold winners as long as the case is intact",
			"I rarely trim winners early",
			"I sometimes take profits quickly",
			"I usually sell winners fast to lock in gains",
			"I sell any position the moment it shows a gain",
		),
	},
	{
		ID:       "bias_money_buckets",
		Category: CategoryBias,
		Weight:   1,
		BiasTag:  BiasMentalAccounting,
		Options: scale(
			"All my money is one pool with one strategy",
			"Mostly one pool, minor exceptions",
			"I keep a separate 'play money' account",
			"Different pots follow very different rules",
			"Windfalls are for gambling, salary is sacred",
		),
	},
}

var biasPrompts = []Prompt{
	{
		QuestionID: "bias_loss_pain",
		Text:       "How does losing 1,000 feel compared to gaining 1,000?",
		Why:        "Strong loss aversion leads to selling at the bottom and avoiding sensible risk.",
	},
	{
		QuestionID: "bias_realize_loss",
		Text:       "How do you handle positions that are showing a loss?",
	},
	{
		QuestionID: "bias_recent_returns",
		Text:       "How much do recent returns drive your investment choices?",
		Why:        "Chasing recent winners systematically buys high and sells low.",
	},
	{
		QuestionID: "bias_market_timing",
		Text:       "Do you try to time your entries and exits to market movements?",
	},
	{
		QuestionID: "bias_skill_estimate",
		Text:       "How do you rate your own investment skill relative to other investors?",
	},
	{
		QuestionID: "bias_follow_crowd",
		Text:       "How much does it matter to you what other people are investing in?",
	},
	{
		QuestionID: "bias_purchase_price",
		Text:       "How much does the price you originally paid influence your decisions today?",
	},
	{
		QuestionID: "bias_domestic_preference",
		Text:       "How is your portfolio split between your home market and the rest of the world?",
	},
	{
		QuestionID: "bias_sell_winners",
		Text:       "How do you handle positions that are showing a gain?",
	},
	{
		QuestionID: "bias_money_buckets",
		Text:       "Do you treat money differently depending on where it came from?",
	},
}
