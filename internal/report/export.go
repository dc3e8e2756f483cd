package report

import (
	"fmt"
	"strings"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// Exporter renders a monthly report into one downloadable document format.
type Exporter interface {
	ContentType() string
	FileExtension() string
	Render(report *timesheet.MonthlyReport) ([]byte, error)
}

// tableHeader is the column layout shared by every export format.
var tableHeader = []string{
	"Date",
	"Start Time",
	"End Time",
	"Regular Hours",
	"Overtime Hours",
	"Total Hours",
	"Tasks",
	"Remarks",
}

// tableRow flattens one report entry into the shared column layout. Overtime
// is left blank for manual annotation on the printed sheet.
func tableRow(e timesheet.ReportEntry) []string {
	end := ""
	if e.EndTime != nil {
		end = e.EndTime.Format("15:04")
	}
	hours := formatHours(e.Hours)

	return []string{
		e.Date.FormatDMY(),
		e.StartTime.Format("15:04"),
		end,
		hours,
		"",
		hours,
		e.Title,
		e.Description,
	}
}

// formatHours trims trailing zeros so 8.00 prints as "8" and 7.50 as "7.5".
func formatHours(h float64) string {
	s := fmt.Sprintf("%.2f", h)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}
