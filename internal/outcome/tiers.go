package outcome

import "CoinLife/internal/model"

// Fallback is returned if no tier matches, which the final catch-all tier
// prevents in practice.
var Fallback = model.Ending{Title: "Rekt", Description: "The market took everything but the lesson."}

// Tiers is the ordered decision tree. The bankrupt tier comes first, then
// ROI bands from best to worst.
var Tiers = []Tier{
	{
		Name: "bankrupt",
		Match: func(in Input) bool {
			return in.Bankrupt || in.Total <= BankruptThreshold
		},
		Rules: []Rule{
			{
				Name: "black_swan_ruin",
				Match: func(in Input) bool {
					r, ok := in.LastRecord()
					return ok && r.Event.Category() == model.CategoryBlackSwan
				},
				Ending: model.Ending{
					Title:       "Black Swan Roadkill",
					Description: "You were fully exposed when the unthinkable happened. Nobody saw it coming, and that was the point.",
				},
			},
			{
				Name: "early_ruin",
				Match: func(in Input) bool {
					r, ok := in.LastRecord()
					return ok && r.Day <= 2
				},
				Ending: model.Ending{
					Title:       "Speedrun to Zero",
					Description: "Broke before the week had properly started. A personal best, of a kind.",
				},
			},
			{
				Name:  "all_in_ruin",
				Match: func(in Input) bool { return in.Stats.AllIns >= 3 },
				Ending: model.Ending{
					Title:       "Degenerate Gambler",
					Description: "All in, again and again, until there was nothing left to push.",
				},
			},
			{
				Name: "knife_catcher",
				Match: func(in Input) bool {
					r, ok := in.LastRecord()
					return ok && r.Event.Category() == model.CategoryBearish && in.Stats.ContraryActions >= 2
				},
				Ending: model.Ending{
					Title:       "Catching Falling Knives",
					Description: "Every bad headline looked like a discount. The discounts kept coming.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Liquidated",
			Description: "The account is empty. The chart does not care how you feel about it.",
		},
	},
	{
		Name:  "roi_above_200",
		Match: roiAbove(200),
		Rules: []Rule{
			{
				Name:  "lucky",
				Match: func(in Input) bool { return in.Stats.LuckEvents >= 3 },
				Ending: model.Ending{
					Title:       "Chosen by the Candles",
					Description: "You held through every pump. Skill or luck, the screenshots look the same.",
				},
			},
			{
				Name:  "full_send",
				Match: func(in Input) bool { return in.Stats.AllIns >= 3 },
				Ending: model.Ending{
					Title:       "Full Send Prophet",
					Description: "You went all in more than once and the market rewarded you every time.",
				},
			},
			{
				Name:  "timing",
				Match: func(in Input) bool { return in.Stats.TimingScore >= 80 },
				Ending: model.Ending{
					Title:       "Market Wizard",
					Description: "Buy the good news, sell the bad. You made it look easy.",
				},
			},
			{
				Name:  "few_trades",
				Match: func(in Input) bool { return in.Stats.Trades <= 2 },
				Ending: model.Ending{
					Title:       "Diamond Hands Deity",
					Description: "One decision, then patience. The rest of the market overtraded while you slept.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Crypto Legend",
			Description: "More than tripled the stake in a week. They will tell stories about this run.",
		},
	},
	{
		Name:  "roi_above_100",
		Match: roiAbove(100),
		Rules: []Rule{
			{
				Name:  "lucky",
				Match: func(in Input) bool { return in.Stats.LuckEvents >= 3 },
				Ending: model.Ending{
					Title:       "Lucky Degen",
					Description: "The pumps kept landing while you were holding. Do not mistake this for a strategy.",
				},
			},
			{
				Name:  "timing",
				Match: func(in Input) bool { return in.Stats.TimingScore >= 75 },
				Ending: model.Ending{
					Title:       "Trend Surfer",
					Description: "You read the headlines and traded with them. Simple, and it worked.",
				},
			},
			{
				Name:  "high_roller",
				Match: func(in Input) bool { return in.Stats.AvgAbsAlpha >= 0.7 },
				Ending: model.Ending{
					Title:       "High Roller",
					Description: "Big sizing every single day. This time the dice were kind.",
				},
			},
			{
				Name:  "few_trades",
				Match: func(in Input) bool { return in.Stats.Trades <= 2 },
				Ending: model.Ending{
					Title:       "Diamond Hands",
					Description: "Bought, held, doubled. The hardest strategy is doing nothing.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Doubled Up",
			Description: "Twice the money you started with. A very good week.",
		},
	},
	{
		Name:  "roi_above_50",
		Match: roiAbove(50),
		Rules: []Rule{
			{
				Name: "storm_chaser",
				Match: func(in Input) bool {
					return in.Stats.BlackSwanEvents >= 1 && in.Stats.MaxDrawdownRatio < 0.2
				},
				Ending: model.Ending{
					Title:       "Storm Chaser",
					Description: "A black swan hit the market and barely touched you.",
				},
			},
			{
				Name:  "timing",
				Match: func(in Input) bool { return in.Stats.TimingScore >= 70 },
				Ending: model.Ending{
					Title:       "Sharp Trader",
					Description: "Most of your calls went with the news. The results show it.",
				},
			},
			{
				Name:  "lucky",
				Match: func(in Input) bool { return in.Stats.LuckEvents >= 3 },
				Ending: model.Ending{
					Title:       "Rode the Wave",
					Description: "You were in the market on the right days. That is most of the game.",
				},
			},
			{
				Name:  "active",
				Match: func(in Input) bool { return in.Stats.ChangeCount >= 5 },
				Ending: model.Ending{
					Title:       "Hyperactive Winner",
					Description: "Meaningful repositioning nearly every day, and still well up.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Solid Gains",
			Description: "Up by half in a week. Most funds would take that for a year.",
		},
	},
	{
		Name:  "roi_above_20",
		Match: roiAbove(20),
		Rules: []Rule{
			{
				Name:  "roller_coaster",
				Match: func(in Input) bool { return in.Stats.MaxDrawdownRatio >= 0.3 },
				Ending: model.Ending{
					Title:       "Roller Coaster Survivor",
					Description: "You were deep underwater at one point and climbed back out.",
				},
			},
			{
				Name:  "timing",
				Match: func(in Input) bool { return in.Stats.TimingScore >= 65 },
				Ending: model.Ending{
					Title:       "Disciplined Trader",
					Description: "Measured moves in the right direction. Nothing flashy, nothing wasted.",
				},
			},
			{
				Name:  "cautious",
				Match: func(in Input) bool { return in.Stats.AvgAbsAlpha < 0.2 },
				Ending: model.Ending{
					Title:       "Cautious Winner",
					Description: "Small bets, steady profit. You never risked the farm.",
				},
			},
		},
		Default: model.Ending{
			Title:       "In the Green",
			Description: "A respectable profit. You beat the savings account by a mile.",
		},
	},
	{
		Name:  "roi_above_0",
		Match: roiAbove(0),
		Rules: []Rule{
			{
				Name:  "nervous",
				Match: func(in Input) bool { return in.Stats.PanicSells >= 2 },
				Ending: model.Ending{
					Title:       "Nervous Winner",
					Description: "You dumped everything twice and still ended up. Your heart rate did not.",
				},
			},
			{
				Name:  "barely",
				Match: func(in Input) bool { return in.Stats.MaxDrawdownRatio >= 0.3 },
				Ending: model.Ending{
					Title:       "Barely Made It",
					Description: "A deep hole, a long climb, and a thin profit at the top.",
				},
			},
			{
				Name:  "contrarian",
				Match: func(in Input) bool { return in.Stats.ContraryActions >= 3 },
				Ending: model.Ending{
					Title:       "Lucky Contrarian",
					Description: "You fought the news all week and somehow came out ahead.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Scraped a Profit",
			Description: "Up, just. Fees would have eaten it, but this market has none.",
		},
	},
	{
		Name:  "roi_above_minus_20",
		Match: roiAbove(-20),
		Rules: []Rule{
			{
				Name:  "bystander",
				Match: func(in Input) bool { return in.Stats.Trades == 0 },
				Ending: model.Ending{
					Title:       "The Bystander",
					Description: "You watched the whole week from the sidelines. Nothing gained, nothing lost.",
				},
			},
			{
				Name:  "overtrader",
				Match: func(in Input) bool { return in.Stats.ChangeCount >= 5 },
				Ending: model.Ending{
					Title:       "Overtrader",
					Description: "A new position every day and a small loss to show for it.",
				},
			},
			{
				Name:  "paper_hands",
				Match: func(in Input) bool { return in.Stats.PanicSells >= 1 },
				Ending: model.Ending{
					Title:       "Paper Hands",
					Description: "You sold everything at the first sign of trouble.",
				},
			},
			{
				Name:  "tourist",
				Match: func(in Input) bool { return in.Stats.AvgAbsAlpha < 0.2 },
				Ending: model.Ending{
					Title:       "Tourist",
					Description: "Dipped a toe, got it wet, went home.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Minor Bruises",
			Description: "A small loss. Call it tuition.",
		},
	},
	{
		Name:  "roi_above_minus_50",
		Match: roiAbove(-50),
		Rules: []Rule{
			{
				Name:  "fighting_tape",
				Match: func(in Input) bool { return in.Stats.ContraryActions >= 3 },
				Ending: model.Ending{
					Title:       "Fighting the Tape",
					Description: "Bought the bad news, sold the good. The market disagreed.",
				},
			},
			{
				Name:  "storm",
				Match: func(in Input) bool { return in.Stats.BlackSwanEvents >= 1 },
				Ending: model.Ending{
					Title:       "Caught in the Storm",
					Description: "A black swan landed on your portfolio. You lived, barely.",
				},
			},
			{
				Name:  "sold_bottom",
				Match: func(in Input) bool { return in.Stats.PanicSells >= 2 },
				Ending: model.Ending{
					Title:       "Sold the Bottom",
					Description: "Every panic sell marked the local low to the minute.",
				},
			},
			{
				Name:  "overconfident",
				Match: func(in Input) bool { return in.Stats.AllIns >= 2 },
				Ending: model.Ending{
					Title:       "Overconfident",
					Description: "Two all-ins too many.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Bag Holder",
			Description: "A heavy bag and a long walk home.",
		},
	},
	{
		Name:  "roi_above_minus_80",
		Match: roiAbove(-80),
		Rules: []Rule{
			{
				Name:  "leverage_addict",
				Match: func(in Input) bool { return in.Stats.AllIns >= 3 },
				Ending: model.Ending{
					Title:       "Leverage Addict",
					Description: "You could not stop pushing the whole stack in.",
				},
			},
			{
				Name:  "always_late",
				Match: func(in Input) bool { return in.Stats.TimingScore <= 20 },
				Ending: model.Ending{
					Title:       "Always Late",
					Description: "Every move came one headline too late.",
				},
			},
			{
				Name:  "cursed",
				Match: func(in Input) bool { return in.Stats.BlackSwanEvents >= 2 },
				Ending: model.Ending{
					Title:       "Cursed",
					Description: "Two black swans in one week. The universe has opinions about you.",
				},
			},
		},
		Default: model.Ending{
			Title:       "Wrecked",
			Description: "Most of the stack is gone. There is still enough for a cheap dinner.",
		},
	},
	{
		Name:  "wiped_out",
		Match: always,
		Rules: []Rule{
			{
				Name: "bad_sign",
				Match: func(in Input) bool {
					return in.Stats.LuckEvents == 0 && in.Stats.BearishEvents+in.Stats.BlackSwanEvents >= 4
				},
				Ending: model.Ending{
					Title:       "Born Under a Bad Sign",
					Description: "Bad news every day and not a single lucky break.",
				},
			},
			{
				Name:  "down_to_dust",
				Match: func(in Input) bool { return in.Stats.AllIns >= 2 },
				Ending: model.Ending{
					Title:       "Down to Dust",
					Description: "All in, then all in again, then almost nothing.",
				},
			},
			{
				Name:  "hodl_to_zero",
				Match: func(in Input) bool { return in.Stats.PanicSells == 0 },
				Ending: model.Ending{
					Title:       "HODL to Zero",
					Description: "You never sold. Conviction is admirable until it is not.",
				},
			},
		},
		Default: Fallback,
	},
}
