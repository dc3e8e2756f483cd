package timesheet

import (
	"errors"
	"fmt"
	"time"
)

// CivilDate is a calendar date without time-of-day or timezone. Entry dates
// are always carried as civil dates so that the same entry never shifts to a
// neighbouring day when the server or client timezone differs.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// ParseCivilDate parses a strict YYYY-MM-DD string. It deliberately does not
// accept timestamps: deriving a calendar date by formatting a timestamp is
// timezone-sensitive and caused off-by-one-day entries in the past.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, ErrInvalidDate
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// CivilDateOf extracts the civil date of a timestamp in its own location.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FormatDMY renders the date as dd/mm/yyyy, the format used on exported
// timesheet documents.
func (d CivilDate) FormatDMY() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func (d CivilDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is strictly earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Entry is the minimal view of a time entry the pure calculation functions
// operate on. Callers convert their storage models into this shape; the
// package holds no state and performs no I/O.
type Entry struct {
	ID          int64
	OwnerID     int64
	CompanyID   int64
	Title       string
	Description string
	Date        CivilDate
	StartTime   time.Time
	EndTime     *time.Time
}
