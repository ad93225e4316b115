package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVTimelineExporter writes one row per timeline year.
type CSVTimelineExporter struct{}

func (c CSVTimelineExporter) Name() string { return "csv" }

func (c CSVTimelineExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Balance", "InterestEarned", "CumulativeContributions"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Timeline {
		row := []string{
			intToString(e.Year),
			e.Balance.StringFixed(2),
			e.InterestEarned.StringFixed(2),
			e.CumulativeContributions.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
