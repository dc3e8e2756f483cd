package timesheet_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func atPtr(hour, minute int) *time.Time {
	t := at(hour, minute)
	return &t
}

var _ = Describe("WorkingHours", func() {
	Context("when the interval does not touch the break window", func() {
		It("returns the raw elapsed hours for a morning interval", func() {
			Expect(timesheet.WorkingHours(at(9, 0), atPtr(11, 0))).To(Equal(2.0))
		})

		It("returns the raw elapsed hours for an afternoon interval", func() {
			Expect(timesheet.WorkingHours(at(13, 0), atPtr(17, 30))).To(Equal(4.5))
		})

		It("returns zero for a zero-length interval", func() {
			Expect(timesheet.WorkingHours(at(9, 0), atPtr(9, 0))).To(Equal(0.0))
		})
	})

	Context("when the interval fully contains the break window", func() {
		It("subtracts exactly one hour", func() {
			Expect(timesheet.WorkingHours(at(9, 0), atPtr(18, 0))).To(Equal(8.0))
		})
	})

	Context("when the interval partially overlaps the break window", func() {
		It("subtracts only the overlap when starting mid-break", func() {
			// 12:30-14:00 is 1.5h elapsed minus 0.5h overlap
			Expect(timesheet.WorkingHours(at(12, 30), atPtr(14, 0))).To(Equal(1.0))
		})

		It("never charges the full break for a partial overlap", func() {
			// 11:30-12:30 overlaps the break by half an hour, not a full one
			Expect(timesheet.WorkingHours(at(11, 30), atPtr(12, 30))).To(Equal(0.5))
		})

		It("subtracts only the overlap when ending mid-break", func() {
			// 09:00-12:15 is 3.25h elapsed minus 0.25h overlap
			Expect(timesheet.WorkingHours(at(9, 0), atPtr(12, 15))).To(BeNumerically("~", 3.0, 1e-9))
		})

		It("returns zero for an interval entirely inside the break", func() {
			Expect(timesheet.WorkingHours(at(12, 10), atPtr(12, 50))).To(Equal(0.0))
		})
	})

	Context("when the entry has no end time", func() {
		It("contributes zero hours", func() {
			Expect(timesheet.WorkingHours(at(9, 0), nil)).To(Equal(0.0))
		})
	})

	Context("when the end precedes the start", func() {
		It("clamps to zero", func() {
			Expect(timesheet.WorkingHours(at(15, 0), atPtr(9, 0))).To(Equal(0.0))
		})
	})

	Context("boundary behaviour", func() {
		It("does not subtract for an interval ending exactly at break start", func() {
			Expect(timesheet.WorkingHours(at(9, 0), atPtr(12, 0))).To(Equal(3.0))
		})

		It("does not subtract for an interval starting exactly at break end", func() {
			Expect(timesheet.WorkingHours(at(13, 0), atPtr(15, 0))).To(Equal(2.0))
		})
	})
})

var _ = Describe("CivilDate", func() {
	Describe("ParseCivilDate", func() {
		It("parses a plain YYYY-MM-DD string", func() {
			d, err := timesheet.ParseCivilDate("2025-03-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(timesheet.CivilDate{Year: 2025, Month: time.March, Day: 1}))
		})

		It("rejects timestamps", func() {
			_, err := timesheet.ParseCivilDate("2025-03-01T09:00:00Z")
			Expect(err).To(Equal(timesheet.ErrInvalidDate))
		})

		It("rejects impossible dates", func() {
			_, err := timesheet.ParseCivilDate("2025-02-30")
			Expect(err).To(Equal(timesheet.ErrInvalidDate))
		})
	})

	Describe("DaysInMonth", func() {
		It("knows variable month lengths", func() {
			Expect(timesheet.DaysInMonth(2025, time.February)).To(Equal(28))
			Expect(timesheet.DaysInMonth(2024, time.February)).To(Equal(29))
			Expect(timesheet.DaysInMonth(2025, time.April)).To(Equal(30))
			Expect(timesheet.DaysInMonth(2025, time.December)).To(Equal(31))
		})
	})
})
