package timeentry

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tanasitp/timesheet-management/internal"
	"github.com/tanasitp/timesheet-management/internal/timesheet"
)

type Repository interface {
	Create(e *TimeEntry) error
	GetByID(id int64) (*TimeEntry, error)
	GetForDate(userID, companyID int64, entryDate string) ([]*TimeEntry, error)
	GetForMonth(userID, companyID int64, year int, month time.Month) ([]*TimeEntry, error)
	Update(e *TimeEntry) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create inserts a new entry. The one-entry-per-day rule is checked against
// current rows first for a friendly error, but the unique index has the
// final word; a concurrent insert between check and write surfaces as
// ErrDuplicateDay and gets the same duplicate response.
func (s *Service) Create(userID int64, dto CreateTimeEntryDTO) (*TimeEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkDailyUniqueness(userID, dto.CompanyID, dto.EntryDate, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &TimeEntry{
		UserID:      userID,
		CompanyID:   dto.CompanyID,
		Title:       dto.Title,
		Description: dto.Description,
		EntryDate:   dto.EntryDate,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(e); err != nil {
		if errors.Is(err, ErrDuplicateDay) {
			return nil, internal.NewDuplicateEntryError(dto.Title)
		}
		s.logger.Error("failed to create time entry", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("time entry created", "entry_id", e.ID, "user_id", userID, "entry_date", e.EntryDate)
	return e, nil
}

func (s *Service) GetByID(userID, entryID int64) (*TimeEntry, error) {
	e, err := s.repo.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, ErrNotOwner
	}
	return e, nil
}

// Update edits an entry. An edit that keeps its own date is exempt from the
// daily uniqueness rule; moving onto a day occupied by a different entry is
// not.
func (s *Service) Update(userID, entryID int64, dto UpdateTimeEntryDTO) (*TimeEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		e.Title = *dto.Title
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.EntryDate != nil {
		e.EntryDate = *dto.EntryDate
	}
	if dto.StartTime != nil {
		e.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		e.EndTime = dto.EndTime
	}
	if dto.ClearEndTime {
		e.EndTime = nil
	}

	date, perr := timesheet.ParseCivilDate(e.EntryDate)
	if perr != nil {
		return nil, ValidationError{Msg: "entry_date must be a valid YYYY-MM-DD date"}
	}
	if err := validateInterval(date, e.StartTime, e.EndTime); err != nil {
		return nil, err
	}

	if err := s.checkDailyUniqueness(userID, e.CompanyID, e.EntryDate, &entryID); err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now()
	if err := s.repo.Update(e); err != nil {
		if errors.Is(err, ErrDuplicateDay) {
			return nil, internal.NewDuplicateEntryError(e.Title)
		}
		s.logger.Error("failed to update time entry", "entry_id", entryID, "error", err)
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(userID, entryID int64) error {
	if _, err := s.GetByID(userID, entryID); err != nil {
		return err
	}

	if err := s.repo.Delete(entryID); err != nil {
		s.logger.Error("failed to delete time entry", "entry_id", entryID, "error", err)
		return err
	}

	s.logger.Info("time entry deleted", "entry_id", entryID, "user_id", userID)
	return nil
}

// ListMonth returns the user's entries for one company and month, sorted by
// entry date.
func (s *Service) ListMonth(userID, companyID int64, year int, month time.Month) ([]*TimeEntry, error) {
	return s.repo.GetForMonth(userID, companyID, year, month)
}

func (s *Service) checkDailyUniqueness(userID, companyID int64, entryDate string, excludeID *int64) error {
	date, err := timesheet.ParseCivilDate(entryDate)
	if err != nil {
		return ValidationError{Msg: "entry_date must be a valid YYYY-MM-DD date"}
	}

	sameDay, err := s.repo.GetForDate(userID, companyID, entryDate)
	if err != nil {
		return err
	}

	entries := make([]timesheet.Entry, 0, len(sameDay))
	for _, e := range sameDay {
		entries = append(entries, e.ToDomain())
	}

	result := timesheet.CheckDailyUniqueness(entries, userID, companyID, date, excludeID)
	if !result.Allowed {
		return internal.NewDuplicateEntryError(result.Conflict.Title)
	}
	return nil
}
