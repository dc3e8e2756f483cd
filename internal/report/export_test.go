package report

import (
	"bytes"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

func sampleReport() *timesheet.MonthlyReport {
	end := time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)
	return &timesheet.MonthlyReport{
		EmployeeName: "Mr. Somchai J.",
		CompanyName:  "ABC Corporation",
		ApprovedBy:   "John Smith (Manager)",
		PeriodLabel:  "01/03/2025 - 31/03/2025",
		Entries: []timesheet.ReportEntry{
			{
				Entry: timesheet.Entry{
					ID:          1,
					OwnerID:     1,
					CompanyID:   1,
					Title:       "API integration work",
					Description: "connected the billing endpoints",
					Date:        timesheet.CivilDate{Year: 2025, Month: time.March, Day: 3},
					StartTime:   time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
					EndTime:     &end,
				},
				Hours: 7,
			},
		},
		TotalHours:    7,
		SignatureDate: timesheet.CivilDate{Year: 2025, Month: time.March, Day: 28},
	}
}

var _ = ginkgo.Describe("Exporters", func() {
	ginkgo.Describe("CSVExporter", func() {
		ginkgo.It("should render the header block, entries and signature rows", func() {
			data, err := NewCSVExporter().Render(sampleReport())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			out := string(data)
			gomega.Expect(out).To(gomega.ContainSubstring("TIMESHEET"))
			gomega.Expect(out).To(gomega.ContainSubstring("Mr. Somchai J."))
			gomega.Expect(out).To(gomega.ContainSubstring("01/03/2025 - 31/03/2025"))
			gomega.Expect(out).To(gomega.ContainSubstring("API integration work"))
			gomega.Expect(out).To(gomega.ContainSubstring("03/03/2025,09:00,17:00,7,,7,API integration work,connected the billing endpoints"))
			gomega.Expect(out).To(gomega.ContainSubstring("Total,7"))
			gomega.Expect(out).To(gomega.ContainSubstring("Approved by,John Smith (Manager),Date,28/03/2025"))
		})

		ginkgo.It("should render an empty month without entry rows", func() {
			report := sampleReport()
			report.Entries = nil
			report.TotalHours = 0

			data, err := NewCSVExporter().Render(report)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(string(data)).To(gomega.ContainSubstring("Total,0"))
			gomega.Expect(strings.Count(string(data), "09:00")).To(gomega.BeZero())
		})
	})

	ginkgo.Describe("XLSXExporter", func() {
		ginkgo.It("should produce a readable workbook with the timesheet layout", func() {
			data, err := NewXLSXExporter().Render(sampleReport())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			f, err := excelize.OpenReader(bytes.NewReader(data))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			defer f.Close()

			title, err := f.GetCellValue("Timesheet", "A1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(title).To(gomega.Equal("TIMESHEET"))

			date, err := f.GetCellValue("Timesheet", "A8")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(date).To(gomega.Equal("03/03/2025"))
		})
	})

	ginkgo.Describe("PDFExporter", func() {
		ginkgo.It("should produce a PDF document", func() {
			data, err := NewPDFExporter().Render(sampleReport())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(len(data)).To(gomega.BeNumerically(">", 500))
			gomega.Expect(string(data[:5])).To(gomega.Equal("%PDF-"))
		})

		ginkgo.It("should render a placeholder row for an empty month", func() {
			report := sampleReport()
			report.Entries = nil

			data, err := NewPDFExporter().Render(report)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(len(data)).To(gomega.BeNumerically(">", 500))
		})
	})

	ginkgo.Describe("formatHours", func() {
		ginkgo.It("should trim trailing zeros", func() {
			gomega.Expect(formatHours(8)).To(gomega.Equal("8"))
			gomega.Expect(formatHours(7.5)).To(gomega.Equal("7.5"))
			gomega.Expect(formatHours(7.25)).To(gomega.Equal("7.25"))
			gomega.Expect(formatHours(0)).To(gomega.Equal("0"))
		})
	})
})
