package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// ConsoleLiteFormatter provides a concise, unstyled console summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters
	fmt.Fprintln(&buf, "GROWTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Principal=%s Rate=%s Years=%d Compounding=%s\n",
		FormatCurrency(p.Principal), FormatRate(p.AnnualRate), p.Years, p.CompoundingFrequency)
	if p.HasContributions() {
		fmt.Fprintf(&buf, "Contribution=%s %s\n", FormatCurrency(p.ContributionAmount), p.ContributionFrequency)
	}
	fmt.Fprintf(&buf, "FutureValue=%s Contributions=%s Interest=%s\n",
		FormatCurrency(report.FutureValue), FormatCurrency(report.TotalContributions), FormatCurrency(report.TotalInterest))
	if report.RequiredRate != nil && report.TargetAmount != nil {
		fmt.Fprintf(&buf, "Target=%s RequiredRate=%s\n", FormatCurrency(*report.TargetAmount), FormatRate(*report.RequiredRate))
	}
	for _, s := range report.Insights {
		fmt.Fprintf(&buf, "- %s\n", s)
	}
	return buf.Bytes(), nil
}
