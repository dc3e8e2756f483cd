package timesheet_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

func mustDate(s string) timesheet.CivilDate {
	d, err := timesheet.ParseCivilDate(s)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("CheckDailyUniqueness", func() {
	var entries []timesheet.Entry

	BeforeEach(func() {
		entries = []timesheet.Entry{
			{
				ID:        1,
				OwnerID:   10,
				CompanyID: 100,
				Title:     "API integration work",
				Date:      mustDate("2025-03-01"),
				StartTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			},
		}
	})

	It("rejects a second entry for the same owner, company and date", func() {
		result := timesheet.CheckDailyUniqueness(entries, 10, 100, mustDate("2025-03-01"), nil)
		Expect(result.Allowed).To(BeFalse())
		Expect(result.Conflict).NotTo(BeNil())
		Expect(result.Conflict.ID).To(Equal(int64(1)))
		Expect(result.Conflict.Title).To(Equal("API integration work"))
	})

	It("allows a different date for the same owner and company", func() {
		result := timesheet.CheckDailyUniqueness(entries, 10, 100, mustDate("2025-03-02"), nil)
		Expect(result.Allowed).To(BeTrue())
		Expect(result.Conflict).To(BeNil())
	})

	It("allows the same date under a different company", func() {
		result := timesheet.CheckDailyUniqueness(entries, 10, 200, mustDate("2025-03-01"), nil)
		Expect(result.Allowed).To(BeTrue())
	})

	It("allows the same date for a different owner", func() {
		result := timesheet.CheckDailyUniqueness(entries, 11, 100, mustDate("2025-03-01"), nil)
		Expect(result.Allowed).To(BeTrue())
	})

	It("exempts an entry from conflicting with itself on edit", func() {
		selfID := int64(1)
		result := timesheet.CheckDailyUniqueness(entries, 10, 100, mustDate("2025-03-01"), &selfID)
		Expect(result.Allowed).To(BeTrue())
	})

	It("still rejects an edit that collides with a different entry", func() {
		entries = append(entries, timesheet.Entry{
			ID:        2,
			OwnerID:   10,
			CompanyID: 100,
			Title:     "Code review",
			Date:      mustDate("2025-03-02"),
		})
		editID := int64(2)
		result := timesheet.CheckDailyUniqueness(entries, 10, 100, mustDate("2025-03-01"), &editID)
		Expect(result.Allowed).To(BeFalse())
		Expect(result.Conflict.ID).To(Equal(int64(1)))
	})

	It("returns a copy of the conflicting entry", func() {
		result := timesheet.CheckDailyUniqueness(entries, 10, 100, mustDate("2025-03-01"), nil)
		result.Conflict.Title = "mutated"
		Expect(entries[0].Title).To(Equal("API integration work"))
	})
})
