package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxSimulationPeriods caps compoundingFrequency*years for the period-by-period
// simulations (daily compounding for 273 years fits).
const MaxSimulationPeriods = 100000

const (
	msgInvalidInput = "invalid input: all numeric values must be non-negative and compounding frequency must be positive"
	msgOverflow     = "invalid input: projected value is too large to represent"
)

// ValidateParameters checks the bounds shared by the compounding engine and the
// timeline generator.
func ValidateParameters(p domain.InvestmentParameters) error {
	if p.Principal.IsNegative() || p.AnnualRate.IsNegative() || p.Years < 0 ||
		p.CompoundingFrequency <= 0 || p.ContributionFrequency <= 0 {
		return domain.NewInvalidParameterError(msgInvalidInput)
	}
	// A non-positive contribution amount is not an error; it means no contributions.
	if p.CompoundingFrequency > MaxSimulationPeriods || p.ContributionFrequency > MaxSimulationPeriods {
		return domain.NewInvalidParameterError(fmt.Sprintf(
			"invalid input: frequency exceeds the supported maximum of %d periods per year", MaxSimulationPeriods))
	}
	// Both factors are bounded here, so Periods() cannot wrap.
	if p.Years > MaxSimulationPeriods || p.Periods() > MaxSimulationPeriods {
		return domain.NewInvalidParameterError(fmt.Sprintf(
			"invalid input: %d compounding periods exceeds the supported maximum of %d", p.Periods(), MaxSimulationPeriods))
	}
	return nil
}

// CalculateFutureValue returns the value of the principal plus all recurring
// contributions at the end of the horizon, rounded to cents.
//
// The principal grows in closed form. Contributions are simulated period by
// period: at the start of every period whose index (from 0) is a multiple of
// compounding/contribution frequency, amount*(contribution/compounding) is
// deposited, then the contribution balance earns one period of interest.
// Rounding happens once at the end.
func CalculateFutureValue(p domain.InvestmentParameters) (decimal.Decimal, error) {
	if err := ValidateParameters(p); err != nil {
		return decimal.Zero, err
	}

	periodRate := p.AnnualRate.InexactFloat64() / float64(p.CompoundingFrequency)
	periods := p.Periods()
	base := p.Principal.InexactFloat64() * math.Pow(1+periodRate, float64(periods))

	total := base
	if p.HasContributions() {
		total += futureValueOfContributions(p, periodRate, periods)
	}

	fv, ok := money.RoundCents(total)
	if !ok {
		return decimal.Zero, domain.NewInvalidParameterError(msgOverflow)
	}
	return fv, nil
}

// futureValueOfContributions runs the start-of-period contribution schedule.
// When the contribution frequency exceeds the compounding frequency the
// periods-per-contribution ratio is fractional and the modulo test decides
// which periods receive a deposit; that schedule is kept as is.
func futureValueOfContributions(p domain.InvestmentParameters, periodRate float64, periods int) float64 {
	deposit := contributionPerDeposit(p)
	spacing := periodsPerContribution(p)

	balance := 0.0
	for i := 0; i < periods; i++ {
		if isContributionPeriod(i, spacing) {
			balance += deposit
		}
		balance *= 1 + periodRate
	}
	return balance
}

// contributionPerDeposit scales the contribution amount by contribution/compounding frequency.
func contributionPerDeposit(p domain.InvestmentParameters) float64 {
	return p.ContributionAmount.InexactFloat64() * (float64(p.ContributionFrequency) / float64(p.CompoundingFrequency))
}

func periodsPerContribution(p domain.InvestmentParameters) float64 {
	return float64(p.CompoundingFrequency) / float64(p.ContributionFrequency)
}

// isContributionPeriod applies the floating-point modulo test to a period index.
func isContributionPeriod(index int, spacing float64) bool {
	return math.Mod(float64(index), spacing) == 0
}

// ContributionSchedule lists the period indices (from 0) that receive a deposit
// in the future value simulation, along with the deposit size.
func ContributionSchedule(p domain.InvestmentParameters) ([]int, decimal.Decimal, error) {
	if err := ValidateParameters(p); err != nil {
		return nil, decimal.Zero, err
	}
	if !p.HasContributions() {
		return nil, decimal.Zero, nil
	}
	spacing := periodsPerContribution(p)
	var indices []int
	for i := 0; i < p.Periods(); i++ {
		if isContributionPeriod(i, spacing) {
			indices = append(indices, i)
		}
	}
	return indices, decimal.NewFromFloat(contributionPerDeposit(p)), nil
}
