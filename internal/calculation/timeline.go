package calculation

import (
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// GenerateTimeline simulates the investment period by period and emits one
// entry per elapsed year. Years == 0 yields an empty timeline.
//
// Within a year each period first earns interest on the running balance, then
// receives a contribution when its 1-based index is a multiple of the
// periods-per-contribution ratio. Yearly interest is the change in balance
// minus amount*min(contribution frequency, compounding frequency), the same
// deduction for every year regardless of how many deposits actually landed.
func GenerateTimeline(p domain.InvestmentParameters) ([]domain.TimelineEntry, error) {
	if err := ValidateParameters(p); err != nil {
		return nil, err
	}

	periodRate := p.AnnualRate.InexactFloat64() / float64(p.CompoundingFrequency)
	periodsPerYear := int(p.CompoundingFrequency)
	deposit := contributionPerDeposit(p)
	spacing := periodsPerContribution(p)
	yearlyDeduction := p.ContributionAmount.InexactFloat64() *
		math.Min(float64(p.ContributionFrequency), float64(p.CompoundingFrequency))

	balance := p.Principal.InexactFloat64()
	contributed := balance
	previous := balance

	timeline := make([]domain.TimelineEntry, 0, p.Years)
	for year := 1; year <= p.Years; year++ {
		for period := 1; period <= periodsPerYear; period++ {
			balance += balance * periodRate

			index := (year-1)*periodsPerYear + period
			if isContributionPeriod(index, spacing) {
				balance += deposit
				contributed += deposit
			}
		}

		entry, ok := timelineEntry(year, balance, balance-previous-yearlyDeduction, contributed)
		if !ok {
			return nil, domain.NewInvalidParameterError(msgOverflow)
		}
		timeline = append(timeline, entry)
		previous = balance
	}
	return timeline, nil
}

func timelineEntry(year int, balance, interest, contributed float64) (domain.TimelineEntry, bool) {
	b, ok1 := money.RoundCents(balance)
	i, ok2 := money.RoundCents(interest)
	c, ok3 := money.RoundCents(contributed)
	if !ok1 || !ok2 || !ok3 {
		return domain.TimelineEntry{}, false
	}
	return domain.TimelineEntry{
		Year:                    year,
		Balance:                 b,
		InterestEarned:          i,
		CumulativeContributions: c,
	}, true
}

// TimelineTotals returns the cumulative contributions at the end of the
// timeline (the principal for an empty timeline) and the interest portion of
// futureValue.
func TimelineTotals(principal decimal.Decimal, timeline []domain.TimelineEntry, futureValue decimal.Decimal) (contributions, interest decimal.Decimal) {
	contributions = principal.Round(money.CentPlaces)
	if n := len(timeline); n > 0 {
		contributions = timeline[n-1].CumulativeContributions
	}
	return contributions, futureValue.Sub(contributions)
}
