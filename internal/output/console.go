package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/growth-calculator/internal/domain"
)

// ConsoleFormatter renders the detailed, styled console report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters
	summary := AnalyzeProjection(report)

	fmt.Fprintln(&buf, titleStyle.Render("COMPOUND GROWTH PROJECTION"))
	if report.ID != "" {
		fmt.Fprintln(&buf, subtitleStyle.Render(fmt.Sprintf("Report %s generated %s", report.ID, report.GeneratedAt.Format("2006-01-02 15:04"))))
	}

	fmt.Fprintln(&buf, sectionStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(p) {
		fmt.Fprintln(&buf, bulletStyle.Render("• "+a))
	}

	fmt.Fprintln(&buf, sectionStyle.Render("SUMMARY"))
	writeRow(&buf, "Principal", FormatCurrency(p.Principal))
	writeRow(&buf, "Annual Rate", FormatRate(p.AnnualRate))
	writeRow(&buf, "Years", intToString(p.Years))
	if p.HasContributions() {
		writeRow(&buf, "Contribution", fmt.Sprintf("%s %s", FormatCurrency(p.ContributionAmount), p.ContributionFrequency))
	}
	writeRow(&buf, "Future Value", highlightStyle.Render(FormatCurrency(summary.FutureValue)))
	writeRow(&buf, "Total Contributions", FormatCurrency(summary.TotalContributions))
	writeRow(&buf, "Total Interest", FormatCurrency(summary.TotalInterest))
	writeRow(&buf, "Growth Multiple", FormatMultiple(summary.GrowthMultiple))
	writeRow(&buf, "Interest Share", FormatPercentage(summary.InterestShare))

	if report.RequiredRate != nil && report.TargetAmount != nil {
		fmt.Fprintln(&buf, sectionStyle.Render("TARGET"))
		writeRow(&buf, "Target Amount", FormatCurrency(*report.TargetAmount))
		writeRow(&buf, "Required Rate", highlightStyle.Render(FormatRate(*report.RequiredRate)))
		if summary.TargetGap != nil && summary.TargetGap.IsPositive() {
			writeRow(&buf, "Shortfall", FormatCurrency(*summary.TargetGap))
		} else {
			writeRow(&buf, "Shortfall", "none, target reached")
		}
	}

	if len(report.Timeline) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("YEAR-BY-YEAR TIMELINE"))
		fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top,
			headerCellStyle.Width(6).Render("Year"),
			headerCellStyle.Render("Balance"),
			headerCellStyle.Render("Interest"),
			headerCellStyle.Render("Contributions"),
		))
		fmt.Fprintln(&buf, strings.Repeat("-", 6+3*16))
		for _, e := range report.Timeline {
			fmt.Fprintln(&buf, lipgloss.JoinHorizontal(lipgloss.Top,
				cellStyle.Width(6).Render(intToString(e.Year)),
				cellStyle.Render(FormatCurrency(e.Balance)),
				cellStyle.Render(FormatCurrency(e.InterestEarned)),
				cellStyle.Render(FormatCurrency(e.CumulativeContributions)),
			))
		}
	}

	writeNarrative(&buf, report)
	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, label, value string) {
	fmt.Fprintln(buf, labelStyle.Render(label+":")+value)
}

func writeNarrative(buf *bytes.Buffer, report *domain.ProjectionReport) {
	if len(report.Insights) > 0 {
		fmt.Fprintln(buf, sectionStyle.Render("INSIGHTS"))
		for _, s := range report.Insights {
			fmt.Fprintln(buf, bulletStyle.Render("• "+s))
		}
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintln(buf, sectionStyle.Render("RECOMMENDATIONS"))
		for _, s := range report.Recommendations {
			fmt.Fprintln(buf, bulletStyle.Render("• "+s))
		}
	}
	if b := report.Benchmarks; b != nil {
		fmt.Fprintln(buf, sectionStyle.Render("BENCHMARKS"))
		for _, s := range []string{b.StockMarket, b.Bonds, b.SavingsAccounts, b.Inflation} {
			fmt.Fprintln(buf, bulletStyle.Render("• "+s))
		}
	}
}
