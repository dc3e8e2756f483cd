package report

import (
	"bytes"
	"encoding/csv"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// CSVExporter writes the timesheet as a flat CSV file. The header block and
// signature lines become leading and trailing rows so the file carries the
// same information as the printed formats.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (x *CSVExporter) ContentType() string {
	return "text/csv"
}

func (x *CSVExporter) FileExtension() string {
	return "csv"
}

func (x *CSVExporter) Render(report *timesheet.MonthlyReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"TIMESHEET"},
		{"Employee Name:", report.EmployeeName},
		{"Company:", report.CompanyName},
		{"Period:", report.PeriodLabel},
		{"Approved by:", report.ApprovedBy},
		{},
		tableHeader,
	}

	for _, e := range report.Entries {
		rows = append(rows, tableRow(e))
	}

	rows = append(rows,
		[]string{},
		[]string{"Total", formatHours(report.TotalHours)},
		[]string{"Employee", report.EmployeeName, "Date", report.SignatureDate.FormatDMY()},
		[]string{"Approved by", report.ApprovedBy, "Date", report.SignatureDate.FormatDMY()},
	)

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
