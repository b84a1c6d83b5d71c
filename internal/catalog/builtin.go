package catalog

import "CoinLife/internal/model"

// Default returns the built-in seven-day catalog.
func Default() *Catalog {
	return New(builtinPools)
}

var builtinPools = map[int][]model.EventSpec{
	1: {
		{Type: "bullish_listing", Text: "A mid-tier exchange lists the coin. Volume wakes up.", ChangeMin: 10, ChangeMax: 30, Tier: model.TierB},
		{Type: "bullish_influencer", Text: "A celebrity posts a dog picture with the ticker in the caption.", ChangeMin: 15, ChangeMax: 45, Tier: model.TierA},
		{Type: "bearish_fud", Text: "A forum thread claims the devs sold their bags.", ChangeMin: -20, ChangeMax: -5, Tier: model.TierC},
		{Type: "neutral_launch", Text: "Launch day. Everyone is watching, nobody is buying.", ChangeMin: -5, ChangeMax: 5, Tier: model.TierC},
	},
	2: {
		{Type: "bullish_partnership", Text: "A payment processor announces a pilot integration.", ChangeMin: 15, ChangeMax: 35, Tier: model.TierB},
		{Type: "bearish_whale_dump", Text: "A whale wallet moves coins to an exchange.", ChangeMin: -30, ChangeMax: -10, Tier: model.TierB},
		{Type: "bearish_gas_spike", Text: "Network fees spike and small holders give up.", ChangeMin: -15, ChangeMax: -5, Tier: model.TierC},
		{Type: "bullish_meme", Text: "The mascot becomes a meme overnight.", ChangeMin: 5, ChangeMax: 25, Tier: model.TierC},
	},
	3: {
		{Type: "blackSwan_exchange_hack", Text: "The largest exchange halts withdrawals after a hack.", ChangeMin: -70, ChangeMax: -40, Tier: model.TierS},
		{Type: "bullish_upgrade", Text: "The protocol upgrade ships on time. Nobody believes it.", ChangeMin: 10, ChangeMax: 30, Tier: model.TierB},
		{Type: "bearish_regulation", Text: "A regulator calls the coin an unregistered security.", ChangeMin: -35, ChangeMax: -15, Tier: model.TierA},
		{Type: "neutral_sideways_chop", Text: "Low volume chop. Traders argue about lines on charts.", ChangeMin: -4, ChangeMax: 4, Tier: model.TierC},
	},
	4: {
		{Type: "bullish_etf_rumor", Text: "Rumors of an ETF filing circulate.", ChangeMin: 20, ChangeMax: 50, Tier: model.TierA},
		{Type: "bearish_rug_rumor", Text: "A sister project rugs. Contagion fears spread.", ChangeMin: -40, ChangeMax: -15, Tier: model.TierA},
		{Type: "bullish_short_squeeze", Text: "Overleveraged shorts get liquidated in a cascade.", ChangeMin: 25, ChangeMax: 60, Tier: model.TierS},
		{Type: "bearish_profit_taking", Text: "Early buyers take profit.", ChangeMin: -15, ChangeMax: -5, Tier: model.TierC},
	},
	5: {
		{Type: "blackSwan_stablecoin_depeg", Text: "The paired stablecoin loses its peg.", ChangeMin: -80, ChangeMax: -50, Tier: model.TierSPlus},
		{Type: "bullish_institution", Text: "A fund discloses a position in its quarterly filing.", ChangeMin: 15, ChangeMax: 40, Tier: model.TierA},
		{Type: "bearish_outage", Text: "The chain halts for six hours.", ChangeMin: -30, ChangeMax: -10, Tier: model.TierB},
		{Type: "bullish_burn", Text: "The team burns a chunk of the treasury.", ChangeMin: 5, ChangeMax: 20, Tier: model.TierC},
	},
	6: {
		{Type: "blackSwan_etf_approval", Text: "The ETF is approved. Nobody was positioned for it.", ChangeMin: 60, ChangeMax: 120, Tier: model.TierSPlus},
		{Type: "bearish_founder_arrest", Text: "The founder is detained at an airport.", ChangeMin: -50, ChangeMax: -25, Tier: model.TierS},
		{Type: "bullish_halving", Text: "Supply issuance halves. Maximalists celebrate.", ChangeMin: 10, ChangeMax: 35, Tier: model.TierB},
		{Type: "bearish_delisting", Text: "A major exchange delists the coin in two jurisdictions.", ChangeMin: -30, ChangeMax: -10, Tier: model.TierB},
	},
	7: {
		{Type: "bullish_mainstream", Text: "Your taxi driver asks how to buy the coin.", ChangeMin: 10, ChangeMax: 40, Tier: model.TierA},
		{Type: "bearish_top_signal", Text: "A magazine cover calls it the future of money.", ChangeMin: -35, ChangeMax: -10, Tier: model.TierA},
		{Type: "blackSwan_quantum", Text: "A lab claims to break the signature scheme.", ChangeMin: -90, ChangeMax: -60, Tier: model.TierSPlus},
		{Type: "neutral_weekend", Text: "Weekend liquidity. Candles barely move.", ChangeMin: -3, ChangeMax: 3, Tier: model.TierC},
	},
}
