package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tanasitp/timesheet-management/internal/timeentry"
)

// TimeEntryRepository implements the timeentry.Repository interface using GORM
type TimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) timeentry.Repository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) Create(e *timeentry.TimeEntry) error {
	if err := r.db.Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return timeentry.ErrDuplicateDay
		}
		return err
	}
	return nil
}

func (r *TimeEntryRepository) GetByID(id int64) (*timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, timeentry.ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *TimeEntryRepository) GetForDate(userID, companyID int64, entryDate string) ([]*timeentry.TimeEntry, error) {
	var entries []*timeentry.TimeEntry
	err := r.db.Where("user_id = ? AND company_id = ? AND entry_date = ?", userID, companyID, entryDate).
		Find(&entries).Error
	return entries, err
}

// GetForMonth uses the lexicographic ordering of YYYY-MM-DD strings to range
// over one calendar month.
func (r *TimeEntryRepository) GetForMonth(userID, companyID int64, year int, month time.Month) ([]*timeentry.TimeEntry, error) {
	first := fmt.Sprintf("%04d-%02d-01", year, int(month))
	next := fmt.Sprintf("%04d-%02d-01", year, int(month)+1)
	if month == time.December {
		next = fmt.Sprintf("%04d-01-01", year+1)
	}

	var entries []*timeentry.TimeEntry
	err := r.db.Where("user_id = ? AND company_id = ? AND entry_date >= ? AND entry_date < ?",
		userID, companyID, first, next).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *TimeEntryRepository) Update(e *timeentry.TimeEntry) error {
	e.UpdatedAt = time.Now()
	if err := r.db.Save(e).Error; err != nil {
		if isUniqueViolation(err) {
			return timeentry.ErrDuplicateDay
		}
		return err
	}
	return nil
}

func (r *TimeEntryRepository) Delete(id int64) error {
	return r.db.Delete(&timeentry.TimeEntry{}, id).Error
}

// isUniqueViolation reports whether err came from the unique index on
// (user_id, company_id, entry_date). Postgres signals this with SQLSTATE
// 23505; the SQLite driver used in tests only exposes message text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
