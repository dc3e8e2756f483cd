package timesheet

import "time"

// The daily break window excluded from worked hours, evaluated on the
// calendar day of the entry's start timestamp.
const (
	BreakStartHour = 12
	BreakEndHour   = 13
)

// WorkingHours computes the worked duration of one interval in hours. A nil
// end means the entry is still in progress and contributes zero. When the
// interval overlaps the 12:00-13:00 break window, only the actual overlap is
// subtracted, so a 12:30-14:00 entry loses half an hour, not a full one.
// Intervals spanning midnight are out of contract.
func WorkingHours(start time.Time, end *time.Time) float64 {
	if end == nil {
		return 0
	}

	elapsed := end.Sub(start).Hours()
	if elapsed <= 0 {
		return 0
	}

	breakStart := time.Date(start.Year(), start.Month(), start.Day(), BreakStartHour, 0, 0, 0, start.Location())
	breakEnd := time.Date(start.Year(), start.Month(), start.Day(), BreakEndHour, 0, 0, 0, start.Location())

	overlapStart := start
	if breakStart.After(overlapStart) {
		overlapStart = breakStart
	}
	overlapEnd := *end
	if breakEnd.Before(overlapEnd) {
		overlapEnd = breakEnd
	}

	if overlap := overlapEnd.Sub(overlapStart); overlap > 0 {
		elapsed -= overlap.Hours()
	}

	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// EntryHours is WorkingHours applied to an entry.
func EntryHours(e Entry) float64 {
	return WorkingHours(e.StartTime, e.EndTime)
}
