package timeentry

import (
	"time"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// CreateTimeEntryDTO is the payload for POST /time-entries. Times are
// RFC 3339 timestamps; the entry date is a plain calendar date.
type CreateTimeEntryDTO struct {
	CompanyID   int64      `json:"company_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EntryDate   string     `json:"entry_date"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// UpdateTimeEntryDTO uses pointers so absent fields are left unchanged. A nil
// EndTime means "keep"; clients mark an entry as in progress again with
// ClearEndTime instead.
type UpdateTimeEntryDTO struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	EntryDate    *string    `json:"entry_date,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	ClearEndTime bool       `json:"clear_end_time,omitempty"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateTimeEntryDTO) Validate() error {
	if d.CompanyID <= 0 {
		return ValidationError{Msg: "company_id is required"}
	}
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	date, err := timesheet.ParseCivilDate(d.EntryDate)
	if err != nil {
		return ValidationError{Msg: "entry_date must be a valid YYYY-MM-DD date"}
	}
	if d.StartTime.IsZero() {
		return ValidationError{Msg: "start_time is required"}
	}
	return validateInterval(date, d.StartTime, d.EndTime)
}

func (d UpdateTimeEntryDTO) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return ValidationError{Msg: "title cannot be empty"}
	}
	if d.EntryDate != nil {
		if _, err := timesheet.ParseCivilDate(*d.EntryDate); err != nil {
			return ValidationError{Msg: "entry_date must be a valid YYYY-MM-DD date"}
		}
	}
	if d.ClearEndTime && d.EndTime != nil {
		return ValidationError{Msg: "clear_end_time cannot be combined with end_time"}
	}
	return nil
}

// validateInterval rejects intervals that end before they start or span
// midnight. Entries belong to a single calendar day; overnight work is
// logged as two entries.
func validateInterval(date timesheet.CivilDate, start time.Time, end *time.Time) error {
	if timesheet.CivilDateOf(start) != date {
		return ValidationError{Msg: "start_time must fall on entry_date"}
	}
	if end != nil {
		if !end.After(start) {
			return ValidationError{Msg: "end_time must be after start_time"}
		}
		if timesheet.CivilDateOf(*end) != date {
			return ValidationError{Msg: "end_time must fall on entry_date"}
		}
	}
	return nil
}
