package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures derived from a projection report.
type Summary struct {
	FutureValue        decimal.Decimal
	TotalContributions decimal.Decimal
	TotalInterest      decimal.Decimal
	GrowthMultiple     decimal.Decimal
	// InterestShare is the percentage of the future value that came from interest.
	InterestShare decimal.Decimal
	// BestYear is the timeline year with the most interest earned (0 if no timeline).
	BestYear         int
	BestYearInterest decimal.Decimal
	// TargetGap is the target amount minus the future value, when a target was given.
	TargetGap *decimal.Decimal
}

// AnalyzeProjection derives the headline figures shared by the console, HTML
// and PDF reports. Extracted from the formatters for testability.
func AnalyzeProjection(report *domain.ProjectionReport) Summary {
	s := Summary{
		FutureValue:        report.FutureValue,
		TotalContributions: report.TotalContributions,
		TotalInterest:      report.TotalInterest,
		GrowthMultiple:     report.GrowthMultiple(),
		InterestShare:      decimal.Zero,
		BestYearInterest:   decimal.Zero,
	}
	if report.FutureValue.IsPositive() {
		s.InterestShare = report.TotalInterest.Div(report.FutureValue).Mul(decimalHundred).Round(2)
	}
	for _, entry := range report.Timeline {
		if s.BestYear == 0 || entry.InterestEarned.GreaterThan(s.BestYearInterest) {
			s.BestYear = entry.Year
			s.BestYearInterest = entry.InterestEarned
		}
	}
	if report.TargetAmount != nil {
		gap := report.TargetAmount.Sub(report.FutureValue)
		s.TargetGap = &gap
	}
	return s
}
