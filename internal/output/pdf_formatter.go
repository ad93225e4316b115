package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/growth-calculator/internal/domain"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders the projection as an A4 PDF document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfReport carries the document while its sections are added.
type pdfReport struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	report *domain.ProjectionReport
}

func (p PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetTitle("Compound Growth Projection", false)
	if !report.GeneratedAt.IsZero() {
		doc.SetCreationDate(report.GeneratedAt)
	}

	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), report: report}
	r.addSummaryPage()
	r.addTimeline()
	r.addNarrative()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, r.tr(text), "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) row(label, value string) {
	r.pdf.CellFormat(contentWidth/2, 7, r.tr(label), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth/2, 7, r.tr(value), "", 1, "R", false, 0, "")
}

func (r *pdfReport) bullets(items []string) {
	for _, s := range items {
		r.pdf.MultiCell(contentWidth, 6, r.tr("- "+s), "", "L", false)
	}
}

func (r *pdfReport) addSummaryPage() {
	p := r.report.Parameters
	s := AnalyzeProjection(r.report)

	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Compound Growth Projection", "", 1, "C", false, 0, "")
	if r.report.ID != "" {
		r.pdf.SetFont("Arial", "I", 10)
		r.pdf.SetTextColor(120, 120, 120)
		r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Report %s, generated %s", r.report.ID, r.report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	}

	r.heading("Key Assumptions")
	r.bullets(GenerateAssumptions(p))

	r.heading("Summary")
	r.row("Principal", FormatCurrency(p.Principal))
	r.row("Annual rate", FormatRate(p.AnnualRate))
	r.row("Years", intToString(p.Years))
	if p.HasContributions() {
		r.row("Contribution", fmt.Sprintf("%s %s", FormatCurrency(p.ContributionAmount), p.ContributionFrequency))
	}
	r.pdf.SetFont("Arial", "B", 11)
	r.row("Future value", FormatCurrency(s.FutureValue))
	r.pdf.SetFont("Arial", "", 11)
	r.row("Total contributions", FormatCurrency(s.TotalContributions))
	r.row("Total interest", FormatCurrency(s.TotalInterest))
	r.row("Growth multiple", FormatMultiple(s.GrowthMultiple))

	if r.report.TargetAmount != nil && r.report.RequiredRate != nil {
		r.heading("Target")
		r.row("Target amount", FormatCurrency(*r.report.TargetAmount))
		r.row("Required annual rate", FormatRate(*r.report.RequiredRate))
	}
}

func (r *pdfReport) addTimeline() {
	if len(r.report.Timeline) == 0 {
		return
	}
	r.heading("Year-by-Year Timeline")
	widths := []float64{20, (contentWidth - 20) / 3, (contentWidth - 20) / 3, (contentWidth - 20) / 3}
	header := []string{"Year", "Balance", "Interest", "Contributions"}

	writeHeader := func() {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.SetFillColor(245, 247, 250)
		for i, h := range header {
			r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetFont("Arial", "", 10)
	}
	writeHeader()
	_, pageHeight := r.pdf.GetPageSize()
	for _, e := range r.report.Timeline {
		if r.pdf.GetY()+7 > pageHeight-marginBottom {
			r.pdf.AddPage()
			writeHeader()
		}
		r.pdf.CellFormat(widths[0], 7, intToString(e.Year), "1", 0, "C", false, 0, "")
		r.pdf.CellFormat(widths[1], 7, FormatCurrency(e.Balance), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[2], 7, FormatCurrency(e.InterestEarned), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[3], 7, FormatCurrency(e.CumulativeContributions), "1", 0, "R", false, 0, "")
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) addNarrative() {
	if len(r.report.Insights) > 0 {
		r.heading("Insights")
		r.bullets(r.report.Insights)
	}
	if len(r.report.Recommendations) > 0 {
		r.heading("Recommendations")
		r.bullets(r.report.Recommendations)
	}
	if b := r.report.Benchmarks; b != nil {
		r.heading("Benchmarks")
		r.bullets([]string{b.StockMarket, b.Bonds, b.SavingsAccounts, b.Inflation})
	}
}
