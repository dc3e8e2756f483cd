package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tanasitp/timesheet-management/internal/company"
	"github.com/tanasitp/timesheet-management/internal/timeentry"
	"github.com/tanasitp/timesheet-management/internal/timesheet"
	"github.com/tanasitp/timesheet-management/internal/user"
)

// EntrySource supplies one month of entries, already scoped to the caller.
type EntrySource interface {
	ListMonth(userID, companyID int64, year int, month time.Month) ([]*timeentry.TimeEntry, error)
}

// CompanySource loads a company while enforcing ownership.
type CompanySource interface {
	GetByID(userID, companyID int64) (*company.Company, error)
}

type UserSource interface {
	GetByID(userID int64) (*user.User, error)
}

type Service struct {
	entries   EntrySource
	companies CompanySource
	users     UserSource
	logger    *slog.Logger
}

func NewService(entries EntrySource, companies CompanySource, users UserSource, logger *slog.Logger) *Service {
	return &Service{
		entries:   entries,
		companies: companies,
		users:     users,
		logger:    logger,
	}
}

// Monthly assembles the timesheet for one user, company and month. The
// company's approved-by name and configured signature day flow into the
// report; an empty month is a valid, empty report.
func (s *Service) Monthly(userID, companyID int64, year int, month time.Month) (*timesheet.MonthlyReport, error) {
	c, err := s.companies.GetByID(userID, companyID)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.entries.ListMonth(userID, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entries := make([]timesheet.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}

	report := timesheet.BuildMonthlyReport(entries, userID, companyID, month, year, timesheet.ReportOptions{
		EmployeeName: u.DisplayName(),
		CompanyName:  c.Name,
		ApprovedBy:   c.ApprovedBy,
		DateSignDay:  c.DateSignDay,
	})

	return &report, nil
}
