package output

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for every projection.
var DefaultAssumptions = []string{
	"Rates are nominal annual rates; inflation and taxes are not deducted",
	"Amounts are rounded to cents only when reported",
}

// GenerateAssumptions creates the assumptions list from the projection parameters.
func GenerateAssumptions(p domain.InvestmentParameters) []string {
	out := []string{
		fmt.Sprintf("Interest compounds %s (%d periods per year) at %s annually", p.CompoundingFrequency, int(p.CompoundingFrequency), FormatRate(p.AnnualRate)),
	}
	if p.HasContributions() {
		out = append(out, fmt.Sprintf("Contributions of %s are made %s", FormatCurrency(p.ContributionAmount), p.ContributionFrequency))
	} else {
		out = append(out, "No recurring contributions")
	}
	return append(out, DefaultAssumptions...)
}
