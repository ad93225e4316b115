package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVSummaryExporter writes the projection inputs and headline results as
// Field,Value rows.
type CSVSummaryExporter struct{}

func (c CSVSummaryExporter) Name() string { return "summary-csv" }

func (c CSVSummaryExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	p := report.Parameters
	s := AnalyzeProjection(report)
	rows := [][]string{
		{"Field", "Value"},
		{"Principal", p.Principal.StringFixed(2)},
		{"AnnualRate", p.AnnualRate.String()},
		{"Years", intToString(p.Years)},
		{"CompoundingFrequency", intToString(int(p.CompoundingFrequency))},
		{"ContributionAmount", p.ContributionAmount.StringFixed(2)},
		{"ContributionFrequency", intToString(int(p.ContributionFrequency))},
		{"FutureValue", s.FutureValue.StringFixed(2)},
		{"TotalContributions", s.TotalContributions.StringFixed(2)},
		{"TotalInterest", s.TotalInterest.StringFixed(2)},
		{"GrowthMultiple", s.GrowthMultiple.StringFixed(4)},
		{"HasInsights", boolToString(report.HasNarrative())},
	}
	if report.TargetAmount != nil && report.RequiredRate != nil {
		rows = append(rows,
			[]string{"TargetAmount", report.TargetAmount.StringFixed(2)},
			[]string{"RequiredRate", report.RequiredRate.StringFixed(4)},
		)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
