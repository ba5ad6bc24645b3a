package questionnaire

// scale builds the five ordered options for a question from its labels.
// Labels run from the most conservative answer (value 1) to the most
// risk-tolerant answer (value 5).
func scale(labels ...string) []Option {
	options := make([]Option, len(labels))
	for i, label := range labels {
		options[i] = Option{Value: i + 1, Label: label}
	}
	return options
}

// capacityQuestions measure the objective financial ability to absorb
// losses. Time horizon and emergency reserves carry double weight: they
// dominate how much loss a household can actually sustain.
var capacityQuestions = []Question{
	{
		ID:       "cap_horizon",
		Category: CategoryCapacity,
		Weight:   2,
		Options: scale(
			"Less than 1 year",
			"1-3 years",
			"3-7 years",
			"7-15 years",
			"More than 15 years",
		),
	},
	{
		ID:       "cap_emergency_fund",
		Category: CategoryCapacity,
		Weight:   2,
		Options: scale(
			"No emergency fund",
			"Less than 1 month of expenses",
			"1-3 months of expenses",
			"3-6 months of expenses",
			"More than 6 months of expenses",
		),
	},
	{
		ID:       "cap_income_stability",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"Very unstable or irregular",
			"Somewhat unstable",
			"Stable",
			"Very stable",
			"Multiple secure income sources",
		),
	},
	{
		ID:       "cap_savings_rate",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"I cannot save at the moment",
			"Less than 5% of income",
			"5-10% of income",
			"10-20% of income",
			"More than 20% of income",
		),
	},
	{
		ID:       "cap_investment_share",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"More than 75% of my net worth",
			"50-75% of my net worth",
			"25-50% of my net worth",
			"10-25% of my net worth",
			"Less than 10% of my net worth",
		),
	},
	{
		ID:       "cap_debt",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"High-interest debt I struggle to service",
			"Significant debt, manageable",
			"Moderate debt (e.g. mortgage)",
			"Minor debt only",
			"Debt-free",
		),
	},
	{
		ID:       "cap_dependents",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"Several dependents rely fully on my income",
			"Several dependents, partially",
			"One dependent",
			"No dependents, shared household",
			"No dependents",
		),
	},
	{
		ID:       "cap_age_band",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"Over 65",
			"55-65",
			"45-55",
			"35-45",
			"Under 35",
		),
	},
	{
		ID:       "cap_liquidity_needs",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"I expect to withdraw most of it within a year",
			"Large planned expense in 1-2 years",
			"Some withdrawals likely",
			"Withdrawals unlikely",
			"No foreseeable need to withdraw",
		),
	},
	{
		ID:       "cap_loss_absorption",
		Category: CategoryCapacity,
		Weight:   1,
		Options: scale(
			"A 10% loss would affect my daily life",
			"A 20% loss would force me to cut spending",
			"I could absorb a 20% loss",
			"I could absorb a 35% loss",
			"A 50% loss would not change my plans",
		),
	},
}

var capacityPrompts = []Prompt{
	{
		QuestionID: "cap_horizon",
		Text:       "How long until you expect to need the money you are investing?",
		Why:        "The longer the horizon, the more time there is to recover from downturns.",
	},
	{
		QuestionID: "cap_emergency_fund",
		Text:       "How many months of living expenses do you hold in readily accessible savings?",
		Why:        "An emergency fund means market losses never force a sale at the worst moment.",
	},
	{
		QuestionID: "cap_income_stability",
		Text:       "How stable is your household income?",
	},
	{
		QuestionID: "cap_savings_rate",
		Text:       "What share of your income are you able to save or invest each month?",
	},
	{
		QuestionID: "cap_investment_share",
		Text:       "How large is this investment relative to your total net worth?",
		Why:        "Losses hurt less when the portfolio is a small slice of overall wealth.",
	},
	{
		QuestionID: "cap_debt",
		Text:       "Which best describes your current debt situation?",
	},
	{
		QuestionID: "cap_dependents",
		Text:       "How many people depend on your income?",
	},
	{
		QuestionID: "cap_age_band",
		Text:       "Which age band are you in?",
	},
	{
		QuestionID: "cap_liquidity_needs",
		Text:       "How likely are you to withdraw from this portfolio in the next few years?",
	},
	{
		QuestionID: "cap_loss_absorption",
		Text:       "How large a temporary loss could you absorb without changing your lifestyle?",
	},
}
