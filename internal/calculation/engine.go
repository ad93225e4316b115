package calculation

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CalculationEngine orchestrates one projection: future value and timeline,
// the optional rate solve, and the optional narrative.
type CalculationEngine struct {
	Logger Logger
	// RandomSource creates the source used to pick the general tip. Defaults to
	// NewRandomSource; tests pin it.
	RandomSource func() RandomSource
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger:       NopLogger{},
		RandomSource: NewRandomSource,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SetSeed pins the tip picker to a fixed seed.
func (ce *CalculationEngine) SetSeed(seed int64) {
	ce.RandomSource = func() RandomSource { return newSeededSource(seed) }
}

// RunProjection computes a complete projection report. Parameter violations
// are returned unwrapped so their message can be shown to the user as is.
func (ce *CalculationEngine) RunProjection(req *domain.ProjectionRequest) (*domain.ProjectionReport, error) {
	if req == nil {
		return nil, fmt.Errorf("projection request is nil")
	}
	p := req.Investment
	ce.Logger.Debugf("projection: principal=%s rate=%s years=%d compounding=%s contribution=%s/%s",
		p.Principal, p.AnnualRate, p.Years, p.CompoundingFrequency, p.ContributionAmount, p.ContributionFrequency)

	fv, err := CalculateFutureValue(p)
	if err != nil {
		ce.Logger.Warnf("future value rejected: %v", err)
		return nil, err
	}
	timeline, err := GenerateTimeline(p)
	if err != nil {
		ce.Logger.Warnf("timeline rejected: %v", err)
		return nil, err
	}
	contributions, interest := TimelineTotals(p.Principal, timeline, fv)

	report := &domain.ProjectionReport{
		ID:                 idFunc(),
		GeneratedAt:        nowFunc(),
		Parameters:         p,
		InvestorAge:        req.Investor.Age,
		FutureValue:        fv,
		TotalContributions: contributions,
		TotalInterest:      interest,
		Timeline:           timeline,
	}
	ce.Logger.Infof("projected future value %s over %d years (%d timeline entries)", fv.StringFixed(2), p.Years, len(timeline))

	if req.TargetAmount != nil {
		rate, err := CalculateRequiredRate(p.Principal, *req.TargetAmount, p.Years, p.CompoundingFrequency)
		if err != nil {
			ce.Logger.Warnf("required rate rejected: %v", err)
			return nil, err
		}
		target := *req.TargetAmount
		report.TargetAmount = &target
		report.RequiredRate = &rate
		ce.Logger.Debugf("required rate for target %s: %s", target, rate)
	}

	if req.IncludeInsights {
		ce.addNarrative(report)
	}
	return report, nil
}

// addNarrative fills insights, recommendations and benchmarks. The generators
// assume a positive principal; a zero principal has no growth multiple, so the
// insights are skipped with a warning.
func (ce *CalculationEngine) addNarrative(report *domain.ProjectionReport) {
	p := report.Parameters
	if p.Principal.IsPositive() {
		newSource := ce.RandomSource
		if newSource == nil {
			newSource = NewRandomSource
		}
		rng := newSource()
		report.Insights = GenerateInsights(p.Principal, p.AnnualRate, p.Years, report.FutureValue, rng)
	} else {
		ce.Logger.Warnf("insights skipped: principal must be positive to compute a growth multiple")
	}
	report.Recommendations = GenerateRecommendations(p.Principal, p.AnnualRate, p.Years, report.InvestorAge)
	benchmarks := CompareBenchmarks(p.AnnualRate, p.Years)
	report.Benchmarks = &benchmarks
	ce.Logger.Debugf("narrative: %d insights, %d recommendations", len(report.Insights), len(report.Recommendations))
}
