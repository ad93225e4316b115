package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// insightFacts is the input to the insight rule tables.
type insightFacts struct {
	Rate     decimal.Decimal
	Years    int
	Multiple decimal.Decimal
}

// growthPercent formats (multiple*100 - 100) with one decimal place.
func (f insightFacts) growthPercent() string {
	return f.Multiple.Mul(decimalHundred).Sub(decimalHundred).StringFixed(1)
}

var (
	lowRiskCeiling      = decimal.NewFromFloat(0.03)
	moderateRiskCeiling = decimal.NewFromFloat(0.07)
	shortHorizonYears   = 5
	mediumHorizonYears  = 15
	modestGrowthCeiling = decimal.NewFromFloat(1.5)
	solidGrowthCeiling  = decimal.NewFromFloat(3)
)

var riskTiers = []narrativeRule[insightFacts]{
	{
		Name:    "low-risk",
		Applies: func(f insightFacts) bool { return f.Rate.LessThan(lowRiskCeiling) },
		Render:  fixed[insightFacts]("Your investment has a low-risk profile, which is good for capital preservation but may not outpace inflation."),
	},
	{
		Name:    "moderate-risk",
		Applies: func(f insightFacts) bool { return f.Rate.LessThan(moderateRiskCeiling) },
		Render:  fixed[insightFacts]("Your investment has a moderate-risk profile, balancing growth potential with reasonable security."),
	},
	{
		Name:    "high-risk",
		Applies: always[insightFacts],
		Render:  fixed[insightFacts]("Your investment has a high-risk profile. Consider diversifying to protect against market volatility."),
	},
}

var horizonTiers = []narrativeRule[insightFacts]{
	{
		Name:    "short-horizon",
		Applies: func(f insightFacts) bool { return f.Years < shortHorizonYears },
		Render:  fixed[insightFacts]("Short investment horizons limit compounding benefits. Consider extending your time frame if possible."),
	},
	{
		Name:    "medium-horizon",
		Applies: func(f insightFacts) bool { return f.Years < mediumHorizonYears },
		Render:  fixed[insightFacts]("Your medium-term investment horizon allows for meaningful compound growth while maintaining flexibility."),
	},
	{
		Name:    "long-horizon",
		Applies: always[insightFacts],
		Render:  fixed[insightFacts]("Your long-term investment horizon maximizes compound interest benefits. Stay consistent with contributions."),
	},
}

var growthTiers = []narrativeRule[insightFacts]{
	{
		Name:    "modest-growth",
		Applies: func(f insightFacts) bool { return f.Multiple.LessThan(modestGrowthCeiling) },
		Render: func(f insightFacts) string {
			return fmt.Sprintf("Your money will grow %s%% over %d years. Consider increasing contributions or finding higher returns.", f.growthPercent(), f.Years)
		},
	},
	{
		Name:    "solid-growth",
		Applies: func(f insightFacts) bool { return f.Multiple.LessThan(solidGrowthCeiling) },
		Render: func(f insightFacts) string {
			return fmt.Sprintf("Your money will grow %s%% over %d years, a solid return on investment.", f.growthPercent(), f.Years)
		},
	},
	{
		Name:    "excellent-growth",
		Applies: always[insightFacts],
		Render: func(f insightFacts) string {
			return fmt.Sprintf("Your money will grow %s%% over %d years, an excellent return demonstrating the power of compound interest.", f.growthPercent(), f.Years)
		},
	},
}

// GeneralTips is the pool the closing insight is drawn from.
var GeneralTips = []string{
	"Consider inflation when planning long-term investments. Historical inflation averages around 2-3% annually.",
	"Dollar-cost averaging (regular contributions) can help reduce risk and enhance returns over time.",
	"Tax-advantaged accounts like 401(k)s and IRAs can significantly boost your effective return rate.",
	"Rebalancing your portfolio annually can help maintain your target risk level and potentially improve returns.",
	"Emergency funds should typically cover 3-6 months of expenses before investing aggressively.",
	"Diversification across asset classes can help protect your portfolio during market downturns.",
}

// GenerateInsights returns, in order, a risk sentence, a horizon sentence, a
// growth sentence, and one general tip chosen uniformly by rng. A nil rng uses
// NewRandomSource.
//
// Preconditions (not checked): principal > 0 and the inputs already passed
// ValidateParameters.
func GenerateInsights(principal, rate decimal.Decimal, years int, futureValue decimal.Decimal, rng RandomSource) []string {
	if rng == nil {
		rng = NewRandomSource()
	}
	facts := insightFacts{
		Rate:     rate,
		Years:    years,
		Multiple: futureValue.Div(principal),
	}

	insights := make([]string, 0, 4)
	for _, tiers := range [][]narrativeRule[insightFacts]{riskTiers, horizonTiers, growthTiers} {
		if s, ok := firstMatch(tiers, facts); ok {
			insights = append(insights, s)
		}
	}
	return append(insights, GeneralTips[rng.Intn(len(GeneralTips))])
}
