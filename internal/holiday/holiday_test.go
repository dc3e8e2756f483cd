package holiday

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestHoliday(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Holiday Module Suite")
}

var _ = ginkgo.Describe("ForYear", func() {
	ginkgo.It("should return the curated 2025 calendar", func() {
		holidays := ForYear(2025)
		gomega.Expect(holidays).To(gomega.HaveLen(20))
		gomega.Expect(holidays[0].Date).To(gomega.Equal("2025-01-01"))
		gomega.Expect(holidays[0].NameEn).To(gomega.Equal("New Year's Day"))
	})

	ginkgo.It("should fall back to fixed-date holidays for other years", func() {
		holidays := ForYear(2026)
		gomega.Expect(holidays).To(gomega.HaveLen(5))
		gomega.Expect(holidays[0].Date).To(gomega.Equal("2026-01-01"))
		gomega.Expect(holidays[4].Date).To(gomega.Equal("2026-12-31"))
	})

	ginkgo.It("should not expose the internal slice to mutation", func() {
		first := ForYear(2025)
		first[0].NameEn = "mutated"

		second := ForYear(2025)
		gomega.Expect(second[0].NameEn).To(gomega.Equal("New Year's Day"))
	})
})

var _ = ginkgo.Describe("Lookup", func() {
	ginkgo.It("should find Songkran", func() {
		h, ok := Lookup("2025-04-14")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(h.NameEn).To(gomega.Equal("Songkran Festival"))
		gomega.Expect(h.Type).To(gomega.Equal(TypePublic))
	})

	ginkgo.It("should report an ordinary working day as no holiday", func() {
		_, ok := Lookup("2025-03-03")
		gomega.Expect(ok).To(gomega.BeFalse())
	})

	ginkgo.It("should handle malformed input", func() {
		_, ok := Lookup("xx")
		gomega.Expect(ok).To(gomega.BeFalse())
	})
})
