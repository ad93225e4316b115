package calculation

import "github.com/shopspring/decimal"

type recommendationFacts struct {
	Principal decimal.Decimal
	Rate      decimal.Decimal
	Years     int
	Age       int
}

var (
	smallPrincipalCeiling  = decimal.NewFromInt(1000)
	mediumPrincipalCeiling = decimal.NewFromInt(10000)
	lowReturnCeiling       = decimal.NewFromFloat(0.04)
	highReturnFloor        = decimal.NewFromFloat(0.10)
)

var principalTiers = []narrativeRule[recommendationFacts]{
	{
		Name:    "small-principal",
		Applies: func(f recommendationFacts) bool { return f.Principal.LessThan(smallPrincipalCeiling) },
		Render:  fixed[recommendationFacts]("Consider building a larger initial investment to maximize compound growth potential."),
	},
	{
		Name:    "medium-principal",
		Applies: func(f recommendationFacts) bool { return f.Principal.LessThan(mediumPrincipalCeiling) },
		Render:  fixed[recommendationFacts]("Your initial investment provides a good foundation. Regular contributions will accelerate growth."),
	},
	{
		Name:    "large-principal",
		Applies: always[recommendationFacts],
		Render:  fixed[recommendationFacts]("Your substantial initial investment gives you a strong head start. Focus on maintaining an appropriate asset allocation."),
	},
}

// rateTiers may produce nothing: rates in [0.04, 0.10] get no sentence.
var rateTiers = []narrativeRule[recommendationFacts]{
	{
		Name:    "low-return",
		Applies: func(f recommendationFacts) bool { return f.Rate.LessThan(lowReturnCeiling) },
		Render:  fixed[recommendationFacts]("Explore other investment vehicles that might offer higher returns while matching your risk tolerance."),
	},
	{
		Name:    "high-return",
		Applies: func(f recommendationFacts) bool { return f.Rate.GreaterThan(highReturnFloor) },
		Render:  fixed[recommendationFacts]("High expected returns often come with higher risk. Ensure you're comfortable with potential volatility."),
	},
}

var ageTiers = []narrativeRule[recommendationFacts]{
	{
		Name:    "young-investor",
		Applies: func(f recommendationFacts) bool { return f.Age < 30 },
		Render:  fixed[recommendationFacts]("At your age, you can afford to take more risk for potential higher returns due to your long time horizon."),
	},
	{
		Name:    "mid-career-investor",
		Applies: func(f recommendationFacts) bool { return f.Age < 50 },
		Render:  fixed[recommendationFacts]("Balance growth with increasing stability as you approach retirement age."),
	},
	{
		Name:    "late-career-investor",
		Applies: always[recommendationFacts],
		Render:  fixed[recommendationFacts]("Focus on preserving capital while maintaining growth to combat inflation during retirement."),
	},
}

var termTiers = []narrativeRule[recommendationFacts]{
	{
		Name:    "short-term",
		Applies: func(f recommendationFacts) bool { return f.Years < 10 },
		Render:  fixed[recommendationFacts]("For short to medium time horizons, consider maintaining more liquidity and focusing on lower-volatility investments."),
	},
	{
		Name:    "long-term",
		Applies: always[recommendationFacts],
		Render:  fixed[recommendationFacts]("Your long investment horizon allows you to potentially benefit from higher-growth asset classes like equities."),
	},
}

// GenerateRecommendations returns personalized recommendations in the order
// principal, rate, age, horizon. The age sentence is included only when age is
// non-nil; the rate sentence only for rates below 4% or above 10%.
func GenerateRecommendations(principal, rate decimal.Decimal, years int, age *int) []string {
	facts := recommendationFacts{Principal: principal, Rate: rate, Years: years}
	tables := [][]narrativeRule[recommendationFacts]{principalTiers, rateTiers}
	if age != nil {
		facts.Age = *age
		tables = append(tables, ageTiers)
	}
	tables = append(tables, termTiers)

	var recs []string
	for _, tiers := range tables {
		if s, ok := firstMatch(tiers, facts); ok {
			recs = append(recs, s)
		}
	}
	return recs
}
