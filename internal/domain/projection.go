package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestorProfile carries optional facts about the investor.
type InvestorProfile struct {
	Age *int `yaml:"age,omitempty" json:"age,omitempty" toml:"age,omitempty"`
}

// ProjectionRequest is the complete input for one projection run, as loaded
// from a request file or assembled from CLI flags.
type ProjectionRequest struct {
	Investment      InvestmentParameters `yaml:"investment" json:"investment" toml:"investment"`
	Investor        InvestorProfile      `yaml:"investor,omitempty" json:"investor,omitempty" toml:"investor,omitempty"`
	TargetAmount    *decimal.Decimal     `yaml:"target_amount,omitempty" json:"target_amount,omitempty" toml:"target_amount,omitempty"`
	IncludeInsights bool                 `yaml:"include_insights" json:"include_insights" toml:"include_insights"`
}

// ProjectionReport is the result of a projection run, consumed by the formatters.
type ProjectionReport struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Parameters  InvestmentParameters `json:"parameters"`
	InvestorAge *int                 `json:"investor_age,omitempty"`

	FutureValue        decimal.Decimal `json:"future_value"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	Timeline           []TimelineEntry `json:"timeline"`

	// Rate solver output, present only when a target amount was requested
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	RequiredRate *decimal.Decimal `json:"required_rate,omitempty"`

	// Narrative output, present only when insights were requested
	Insights        []string         `json:"insights,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
	Benchmarks      *BenchmarkResult `json:"benchmarks,omitempty"`
}

// HasNarrative reports whether insights were generated for this report.
func (r *ProjectionReport) HasNarrative() bool {
	return len(r.Insights) > 0 || r.Benchmarks != nil
}

// GrowthMultiple returns future value divided by principal, or zero when the
// principal is zero.
func (r *ProjectionReport) GrowthMultiple() decimal.Decimal {
	if r.Parameters.Principal.IsZero() {
		return decimal.Zero
	}
	return r.FutureValue.Div(r.Parameters.Principal)
}
