package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewInvestmentParameters_Defaults(t *testing.T) {
	p := NewInvestmentParameters(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 10, Quarterly)
	assert.Equal(t, Quarterly, p.ContributionFrequency)
	assert.True(t, p.ContributionAmount.IsZero())
	assert.False(t, p.HasContributions())
	assert.Equal(t, 40, p.Periods())
}

func TestWithContributions_ReturnsCopy(t *testing.T) {
	base := NewInvestmentParameters(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 2, Monthly)
	withDeposits := base.WithContributions(decimal.NewFromInt(100), Weekly)

	assert.True(t, withDeposits.HasContributions())
	assert.Equal(t, Weekly, withDeposits.ContributionFrequency)
	assert.False(t, base.HasContributions())
	assert.Equal(t, Monthly, base.ContributionFrequency)

	negative := base.WithContributions(decimal.NewFromInt(-5), Monthly)
	assert.False(t, negative.HasContributions())
}

func TestProjectionReport_GrowthMultiple(t *testing.T) {
	r := &ProjectionReport{
		Parameters:  NewInvestmentParameters(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), 10, Annually),
		FutureValue: decimal.NewFromFloat(1628.89),
	}
	assert.Equal(t, "1.62889", r.GrowthMultiple().String())
	assert.False(t, r.HasNarrative())

	r.Benchmarks = &BenchmarkResult{}
	assert.True(t, r.HasNarrative())

	r.Parameters.Principal = decimal.Zero
	assert.True(t, r.GrowthMultiple().IsZero())
}
