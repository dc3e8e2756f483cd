package timesheet_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

func entryOn(id int64, date string, startHour, endHour int) timesheet.Entry {
	d := mustDate(date)
	start := time.Date(d.Year, d.Month, d.Day, startHour, 0, 0, 0, time.UTC)
	end := time.Date(d.Year, d.Month, d.Day, endHour, 0, 0, 0, time.UTC)
	return timesheet.Entry{
		ID:        id,
		OwnerID:   10,
		CompanyID: 100,
		Date:      d,
		StartTime: start,
		EndTime:   &end,
	}
}

var _ = Describe("BuildMonthlyReport", func() {
	var entries []timesheet.Entry

	BeforeEach(func() {
		entries = []timesheet.Entry{
			// out of order on purpose: 5h on the 15th listed before 3h on the 1st
			entryOn(2, "2025-03-15", 14, 19), // 5h, after the break window
			entryOn(1, "2025-03-01", 8, 11),  // 3h, before the break window
			entryOn(3, "2025-04-01", 13, 17), // next month, excluded
		}
	})

	It("returns the matching entries sorted ascending by date with summed hours", func() {
		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{})

		Expect(report.Entries).To(HaveLen(2))
		Expect(report.Entries[0].ID).To(Equal(int64(1)))
		Expect(report.Entries[1].ID).To(Equal(int64(2)))
		Expect(report.TotalHours).To(Equal(8.0))
	})

	It("excludes other owners and companies", func() {
		foreign := entryOn(4, "2025-03-10", 9, 11)
		foreign.OwnerID = 99
		other := entryOn(5, "2025-03-11", 9, 11)
		other.CompanyID = 200
		entries = append(entries, foreign, other)

		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{})
		Expect(report.Entries).To(HaveLen(2))
	})

	It("counts in-progress entries as zero hours", func() {
		open := entryOn(6, "2025-03-20", 9, 17)
		open.EndTime = nil
		entries = append(entries, open)

		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{})
		Expect(report.Entries).To(HaveLen(3))
		Expect(report.TotalHours).To(Equal(8.0))
	})

	It("returns an empty report for a month with no data", func() {
		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.December, 2025, timesheet.ReportOptions{})
		Expect(report.Entries).To(BeEmpty())
		Expect(report.TotalHours).To(Equal(0.0))
		Expect(report.PeriodLabel).To(Equal("01/12/2025 - 31/12/2025"))
	})

	It("labels the period as the first through last day of the month", func() {
		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.February, 2024, timesheet.ReportOptions{})
		Expect(report.PeriodLabel).To(Equal("01/02/2024 - 29/02/2024"))
	})

	It("is idempotent and does not mutate its input", func() {
		first := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{})
		second := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{})

		Expect(second).To(Equal(first))
		Expect(entries[0].ID).To(Equal(int64(2)), "input order must be untouched")
	})

	It("carries the display fields through", func() {
		report := timesheet.BuildMonthlyReport(entries, 10, 100, time.March, 2025, timesheet.ReportOptions{
			EmployeeName: "Mr. Demo User",
			CompanyName:  "ABC Corporation",
			ApprovedBy:   "John Smith (Manager)",
		})
		Expect(report.EmployeeName).To(Equal("Mr. Demo User"))
		Expect(report.CompanyName).To(Equal("ABC Corporation"))
		Expect(report.ApprovedBy).To(Equal("John Smith (Manager)"))
	})
})

var _ = Describe("SignatureDate", func() {
	today := time.Date(2025, time.June, 17, 10, 0, 0, 0, time.UTC)

	It("uses the configured date-sign day", func() {
		day := 25
		d := timesheet.SignatureDate(time.March, 2025, &day, today)
		Expect(d).To(Equal(timesheet.CivilDate{Year: 2025, Month: time.March, Day: 25}))
	})

	It("clamps the configured day to the month length", func() {
		day := 31
		d := timesheet.SignatureDate(time.February, 2025, &day, today)
		Expect(d).To(Equal(timesheet.CivilDate{Year: 2025, Month: time.February, Day: 28}))
	})

	It("falls back to today's day-of-month when not configured", func() {
		d := timesheet.SignatureDate(time.March, 2025, nil, today)
		Expect(d).To(Equal(timesheet.CivilDate{Year: 2025, Month: time.March, Day: 17}))
	})

	It("clamps the fallback day too", func() {
		endOfMonth := time.Date(2025, time.May, 31, 10, 0, 0, 0, time.UTC)
		d := timesheet.SignatureDate(time.February, 2025, nil, endOfMonth)
		Expect(d).To(Equal(timesheet.CivilDate{Year: 2025, Month: time.February, Day: 28}))
	})
})
