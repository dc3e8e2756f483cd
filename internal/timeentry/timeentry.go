package timeentry

import (
	"errors"
	"time"

	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

// TimeEntry is one logged work item. At most one entry may exist per
// user/company/entry_date; the database enforces this with a unique index
// and the service pre-checks it before writing.
type TimeEntry struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"column:user_id;not null"`
	CompanyID   int64      `json:"company_id" gorm:"column:company_id;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"column:description"`
	EntryDate   string     `json:"entry_date" gorm:"column:entry_date;not null"`
	StartTime   time.Time  `json:"start_time" gorm:"column:start_time;not null"`
	EndTime     *time.Time `json:"end_time" gorm:"column:end_time"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// Hours is the entry's working time with the lunch break subtracted.
func (e *TimeEntry) Hours() float64 {
	return timesheet.WorkingHours(e.StartTime, e.EndTime)
}

// ToDomain converts the stored row into the calculation model. The entry
// date was validated on the way in, so a parse failure here means a corrupt
// row and yields a zero date.
func (e *TimeEntry) ToDomain() timesheet.Entry {
	date, err := timesheet.ParseCivilDate(e.EntryDate)
	if err != nil {
		date = timesheet.CivilDate{}
	}
	return timesheet.Entry{
		ID:          e.ID,
		OwnerID:     e.UserID,
		CompanyID:   e.CompanyID,
		Title:       e.Title,
		Description: e.Description,
		Date:        date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	}
}

var (
	ErrEntryNotFound = errors.New("time entry not found")
	ErrNotOwner      = errors.New("time entry does not belong to user")
	// ErrDuplicateDay is returned by the repository when the unique index
	// on (user_id, company_id, entry_date) rejects a write.
	ErrDuplicateDay = errors.New("an entry already exists for this day")
)
