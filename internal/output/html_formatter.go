package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline balance chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"rate":     FormatRate,
	"multiple": FormatMultiple,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartPoint is the per-year series rendered by the inline chart script.
type chartPoint struct {
	Year          int    `json:"year"`
	Balance       string `json:"balance"`
	Contributions string `json:"contributions"`
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	points := make([]chartPoint, 0, len(report.Timeline))
	for _, e := range report.Timeline {
		points = append(points, chartPoint{Year: e.Year, Balance: e.Balance.StringFixed(2), Contributions: e.CumulativeContributions.StringFixed(2)})
	}

	data := struct {
		*domain.ProjectionReport
		Summary     Summary
		Assumptions []string
		Chart       []chartPoint
	}{report, AnalyzeProjection(report), GenerateAssumptions(report.Parameters), points}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
