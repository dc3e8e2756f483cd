package timesheet

import (
	"fmt"
	"sort"
	"time"
)

// ReportOptions carries the display fields and the tenant's signature-date
// configuration. Today overrides the clock for the signature-date fallback;
// a zero value means time.Now().
type ReportOptions struct {
	EmployeeName string
	CompanyName  string
	ApprovedBy   string
	DateSignDay  *int
	Today        time.Time
}

// ReportEntry pairs an entry with its computed working hours.
type ReportEntry struct {
	Entry
	Hours float64
}

// MonthlyReport is a derived view over the entry collection. It is computed
// on demand and never persisted.
type MonthlyReport struct {
	EmployeeName  string
	CompanyName   string
	ApprovedBy    string
	PeriodLabel   string
	Entries       []ReportEntry
	TotalHours    float64
	SignatureDate CivilDate
}

// BuildMonthlyReport filters the collection down to the (owner, company,
// month, year) subset, sorts it ascending by date and sums working hours.
// A month with no matching entries yields an empty report with zero hours;
// that is not an error. The input slice is never mutated.
func BuildMonthlyReport(entries []Entry, ownerID, companyID int64, month time.Month, year int, opts ReportOptions) MonthlyReport {
	var matched []ReportEntry
	total := 0.0

	for _, e := range entries {
		if e.OwnerID != ownerID || e.CompanyID != companyID {
			continue
		}
		if e.Date.Year != year || e.Date.Month != month {
			continue
		}
		hours := EntryHours(e)
		matched = append(matched, ReportEntry{Entry: e, Hours: hours})
		total += hours
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	return MonthlyReport{
		EmployeeName:  opts.EmployeeName,
		CompanyName:   opts.CompanyName,
		ApprovedBy:    opts.ApprovedBy,
		PeriodLabel:   PeriodLabel(month, year),
		Entries:       matched,
		TotalHours:    total,
		SignatureDate: SignatureDate(month, year, opts.DateSignDay, opts.Today),
	}
}

// PeriodLabel renders the first through last calendar day of the month, e.g.
// "01/03/2025 - 31/03/2025".
func PeriodLabel(month time.Month, year int) string {
	first := CivilDate{Year: year, Month: month, Day: 1}
	last := CivilDate{Year: year, Month: month, Day: DaysInMonth(year, month)}
	return fmt.Sprintf("%s - %s", first.FormatDMY(), last.FormatDMY())
}

// SignatureDate derives the date printed in the export footer: the tenant's
// configured day-of-month if set, otherwise today's day-of-month, either way
// clamped to the last valid day of the target month.
func SignatureDate(month time.Month, year int, dateSignDay *int, today time.Time) CivilDate {
	if today.IsZero() {
		today = time.Now()
	}

	day := today.Day()
	if dateSignDay != nil && *dateSignDay >= 1 {
		day = *dateSignDay
	}

	if last := DaysInMonth(year, month); day > last {
		day = last
	}

	return CivilDate{Year: year, Month: month, Day: day}
}
