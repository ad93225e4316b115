package domain

import (
	"github.com/shopspring/decimal"
)

// InvestmentParameters describes a principal growing under periodic compounding
// with optional recurring contributions. Rates are decimal fractions (0.05 = 5%).
type InvestmentParameters struct {
	Principal             decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	AnnualRate            decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
	Years                 int             `yaml:"years" json:"years" toml:"years"`
	CompoundingFrequency  Frequency       `yaml:"compounding_frequency" json:"compounding_frequency" toml:"compounding_frequency"`
	ContributionAmount    decimal.Decimal `yaml:"contribution_amount" json:"contribution_amount" toml:"contribution_amount"`
	ContributionFrequency Frequency       `yaml:"contribution_frequency" json:"contribution_frequency" toml:"contribution_frequency"`
}

// NewInvestmentParameters returns parameters with no contributions; the
// contribution frequency defaults to the compounding frequency.
func NewInvestmentParameters(principal, annualRate decimal.Decimal, years int, compounding Frequency) InvestmentParameters {
	return InvestmentParameters{
		Principal:             principal,
		AnnualRate:            annualRate,
		Years:                 years,
		CompoundingFrequency:  compounding,
		ContributionAmount:    decimal.Zero,
		ContributionFrequency: compounding,
	}
}

// WithContributions returns a copy with a recurring contribution added.
func (p InvestmentParameters) WithContributions(amount decimal.Decimal, frequency Frequency) InvestmentParameters {
	p.ContributionAmount = amount
	p.ContributionFrequency = frequency
	return p
}

// Periods returns the number of whole compounding periods in the horizon.
func (p InvestmentParameters) Periods() int {
	return int(p.CompoundingFrequency) * p.Years
}

// HasContributions reports whether a positive recurring contribution is set.
func (p InvestmentParameters) HasContributions() bool {
	return p.ContributionAmount.IsPositive()
}

// TimelineEntry summarizes one elapsed year of a projection. Money fields are
// rounded to cents independently.
type TimelineEntry struct {
	Year                    int             `json:"year"`
	Balance                 decimal.Decimal `json:"balance"`
	InterestEarned          decimal.Decimal `json:"interest_earned"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
}

// BenchmarkResult holds one narrative sentence per fixed benchmark.
type BenchmarkResult struct {
	StockMarket     string `json:"stock_market"`
	Bonds           string `json:"bonds"`
	SavingsAccounts string `json:"savings_accounts"`
	Inflation       string `json:"inflation"`
}
