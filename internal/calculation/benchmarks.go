package calculation

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Benchmark is a fixed reference annual growth rate.
type Benchmark struct {
	Label string
	Rate  decimal.Decimal
}

// Historical averages used for comparison narration.
var (
	StockMarketBenchmark = Benchmark{Label: "stock market average", Rate: decimal.NewFromFloat(0.10)}
	BondBenchmark        = Benchmark{Label: "bond market average", Rate: decimal.NewFromFloat(0.04)}
	SavingsBenchmark     = Benchmark{Label: "typical savings accounts", Rate: decimal.NewFromFloat(0.01)}
	InflationBenchmark   = Benchmark{Label: "inflation", Rate: decimal.NewFromFloat(0.025)}
)

// growthMultiple returns (1+rate)^years, computed exactly.
func growthMultiple(rate decimal.Decimal, years int) decimal.Decimal {
	return decimalOne.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// CompareBenchmarks narrates how an investment compounding annually at rate
// compares with each benchmark over years. Inflation gets a two-way verdict
// with no percentage and no tie branch.
//
// Precondition (not checked): years >= 0 and rate >= 0.
func CompareBenchmarks(rate decimal.Decimal, years int) domain.BenchmarkResult {
	investment := growthMultiple(rate, years)

	inflation := "Your investment may not keep pace with inflation, potentially reducing purchasing power over time."
	if investment.GreaterThan(growthMultiple(InflationBenchmark.Rate, years)) {
		inflation = "Your investment is projected to outpace inflation, maintaining purchasing power."
	}

	return domain.BenchmarkResult{
		StockMarket:     comparePerformance(investment, growthMultiple(StockMarketBenchmark.Rate, years), StockMarketBenchmark.Label),
		Bonds:           comparePerformance(investment, growthMultiple(BondBenchmark.Rate, years), BondBenchmark.Label),
		SavingsAccounts: comparePerformance(investment, growthMultiple(SavingsBenchmark.Rate, years), SavingsBenchmark.Label),
		Inflation:       inflation,
	}
}

func comparePerformance(investment, benchmark decimal.Decimal, label string) string {
	diff := investment.Sub(benchmark).Div(benchmark).Mul(decimalHundred).Abs().StringFixed(1)
	switch investment.Cmp(benchmark) {
	case 1:
		return fmt.Sprintf("Your investment is projected to outperform the %s by approximately %s%%.", label, diff)
	case -1:
		return fmt.Sprintf("Your investment is projected to underperform the %s by approximately %s%%.", label, diff)
	default:
		return fmt.Sprintf("Your investment is projected to perform similarly to the %s.", label)
	}
}
