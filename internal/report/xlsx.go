package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// XLSXExporter renders the timesheet as a spreadsheet mirroring the printed
// layout: a header block, the entry table, a total row and the signature
// block.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (x *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (x *XLSXExporter) FileExtension() string {
	return "xlsx"
}

func (x *XLSXExporter) Render(report *timesheet.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timesheet"
	f.SetSheetName(f.GetSheetName(0), sheet)

	setRow := func(row int, values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	header := [][]interface{}{
		{"TIMESHEET"},
		{"Employee Name:", report.EmployeeName},
		{"Company:", report.CompanyName},
		{"Period:", report.PeriodLabel},
		{"Approved by:", report.ApprovedBy},
		{},
	}

	row := 1
	for _, values := range header {
		if err := setRow(row, values); err != nil {
			return nil, err
		}
		row++
	}

	columns := make([]interface{}, len(tableHeader))
	for i, name := range tableHeader {
		columns[i] = name
	}
	if err := setRow(row, columns); err != nil {
		return nil, err
	}
	row++

	for _, e := range report.Entries {
		cells := tableRow(e)
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		if err := setRow(row, values); err != nil {
			return nil, err
		}
		row++
	}

	footer := [][]interface{}{
		{},
		{"Total", formatHours(report.TotalHours)},
		{},
		{"Employee", report.EmployeeName, "Date", report.SignatureDate.FormatDMY()},
		{"Approved by", report.ApprovedBy, "Date", report.SignatureDate.FormatDMY()},
	}
	for _, values := range footer {
		if err := setRow(row, values); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "H", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
