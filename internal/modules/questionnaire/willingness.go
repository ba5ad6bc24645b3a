package questionnaire

// willingnessQuestions measure psychological comfort with volatility.
// The reaction-to-drawdown question carries double weight: actual
// behavior in a downturn is the strongest predictor of whether an
// allocation will be held through a cycle.
var willingnessQuestions = []Question{
	{
		ID:       "will_drop_reaction",
		Category: CategoryWillingness,
		Weight:   2,
		Options: scale(
			"Sell everything to stop further losses",
			"Sell a part of the portfolio",
			"Hold and wait it out",
			"Hold and rebalance as planned",
			"Buy more at lower prices",
		),
	},
	{
		ID:       "will_volatility_comfort",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"Any loss makes me very uncomfortable",
			"I can tolerate small dips",
			"Moderate swings are acceptable",
			"Large swings are acceptable",
			"Volatility does not bother me",
		),
	},
	{
		ID:       "will_experience",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"No investment experience",
			"Savings accounts and deposits only",
			"Some funds or bonds",
			"Stocks and funds for several years",
			"Broad experience incl. derivatives or property",
		),
	},
	{
		ID:       "will_risk_reward",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"Preserving capital is all that matters",
			"Small returns with small fluctuations",
			"Balanced growth and stability",
			"High growth, accepting losses along the way",
			"Maximum growth, fluctuations are irrelevant",
		),
	},
	{
		ID:       "will_sleep_test",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"I would lose sleep over any loss",
			"A 10% loss would keep me up at night",
			"A 20% loss would worry me somewhat",
			"Only a crash would worry me",
			"I never lose sleep over markets",
		),
	},
	{
		ID:       "will_gamble_choice",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"A guaranteed 2% return",
			"Likely 4%, small chance of a 2% loss",
			"Likely 6%, possible 10% loss",
			"Likely 9%, possible 20% loss",
			"Possible 15%, possible 30% loss",
		),
	},
	{
		ID:       "will_past_behavior",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"I sold in a past downturn and stayed out",
			"I sold but re-entered later",
			"I have not been through a downturn",
			"I held through a past downturn",
			"I added money during a past downturn",
		),
	},
	{
		ID:       "will_news_reaction",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"Bad market news makes me want to sell",
			"Bad news makes me check my portfolio daily",
			"I follow the news but rarely act",
			"I mostly ignore market news",
			"Bad news reads like a buying opportunity",
		),
	},
	{
		ID:       "will_self_description",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"Very cautious",
			"Cautious",
			"Balanced",
			"Growth-oriented",
			"Aggressive",
		),
	},
	{
		ID:       "will_loss_horizon",
		Category: CategoryWillingness,
		Weight:   1,
		Options: scale(
			"I would need it back within months",
			"Recovery within a year",
			"I could wait 1-2 years for recovery",
			"I could wait 3-5 years for recovery",
			"Recovery time is irrelevant to me",
		),
	},
}

var willingnessPrompts = []Prompt{
	{
		QuestionID: "will_drop_reaction",
		Text:       "Your portfolio loses 20% of its value in three months. What do you do?",
		Why:        "How you act in a drawdown matters more than how you feel about it in advance.",
	},
	{
		QuestionID: "will_volatility_comfort",
		Text:       "How comfortable are you with the value of your investments fluctuating?",
	},
	{
		QuestionID: "will_experience",
		Text:       "How much investment experience do you have?",
	},
	{
		QuestionID: "will_risk_reward",
		Text:       "Which statement best describes your attitude to risk and reward?",
	},
	{
		QuestionID: "will_sleep_test",
		Text:       "At what point would investment losses start affecting your sleep?",
	},
	{
		QuestionID: "will_gamble_choice",
		Text:       "Which one-year outcome profile would you choose for 10,000?",
	},
	{
		QuestionID: "will_past_behavior",
		Text:       "How did you behave in past market downturns, if you experienced any?",
	},
	{
		QuestionID: "will_news_reaction",
		Text:       "How do you react to negative financial news?",
	},
	{
		QuestionID: "will_self_description",
		Text:       "How would you describe yourself as an investor?",
	},
	{
		QuestionID: "will_loss_horizon",
		Text:       "If your portfolio dropped sharply, how long could you wait for it to recover?",
	},
}
