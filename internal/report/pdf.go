package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// PDFExporter renders the printable timesheet: the TIMESHEET heading, the
// entry table and the two signature lines at the bottom.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (x *PDFExporter) ContentType() string {
	return "application/pdf"
}

func (x *PDFExporter) FileExtension() string {
	return "pdf"
}

// column widths in mm, landscape A4 printable width is about 277mm.
var pdfColWidths = []float64{24, 24, 24, 28, 30, 24, 95, 28}

func (x *PDFExporter) Render(report *timesheet.MonthlyReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "TIMESHEET", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	headerLine := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	headerLine("Employee Name:", report.EmployeeName)
	headerLine("Company:", report.CompanyName)
	headerLine("Period:", report.PeriodLabel)
	headerLine("Approved by:", report.ApprovedBy)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, name := range tableHeader {
		pdf.CellFormat(pdfColWidths[i], 8, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if len(report.Entries) == 0 {
		width := 0.0
		for _, w := range pdfColWidths {
			width += w
		}
		pdf.CellFormat(width, 8, "No time entries for this month", "1", 1, "C", false, 0, "")
	}
	for _, e := range report.Entries {
		cells := tableRow(e)
		for i, c := range cells {
			align := "C"
			if i == 6 {
				align = "L"
			}
			pdf.CellFormat(pdfColWidths[i], 8, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 9, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 9, formatHours(report.TotalHours), "1", 1, "C", false, 0, "")

	pdf.Ln(12)
	signDate := report.SignatureDate.FormatDMY()
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(130, 7, "Employee_________________________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Approved by_____________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(130, 7, fmt.Sprintf("( %s )", report.EmployeeName), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("( %s )", report.ApprovedBy), "", 1, "L", false, 0, "")
	pdf.CellFormat(130, 7, fmt.Sprintf("Date_________%s_______________", signDate), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date_________%s_______________", signDate), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
