package company

import (
	"log/slog"
	"time"
)

type Repository interface {
	Create(c *Company) error
	GetByID(id int64) (*Company, error)
	GetByUserID(userID int64) ([]*Company, error)
	Update(c *Company) error
	// DeleteWithEntries removes the company and all of its time entries in
	// one transaction.
	DeleteWithEntries(id int64) error
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

func (s *Service) Create(userID int64, dto CreateCompanyDTO) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &Company{
		UserID:      userID,
		Name:        dto.Name,
		Code:        dto.Code,
		Description: dto.Description,
		ApprovedBy:  dto.ApprovedBy,
		DateSignDay: dto.DateSignDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create company", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("company created", "company_id", c.ID, "user_id", userID)
	return c, nil
}

// GetByID loads a company and enforces that it belongs to the caller.
func (s *Service) GetByID(userID, companyID int64) (*Company, error) {
	c, err := s.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrNotOwner
	}
	return c, nil
}

func (s *Service) List(userID int64) ([]*Company, error) {
	return s.repo.GetByUserID(userID)
}

func (s *Service) Update(userID, companyID int64, dto UpdateCompanyDTO) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.GetByID(userID, companyID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Code != nil {
		c.Code = *dto.Code
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.ApprovedBy != nil {
		c.ApprovedBy = *dto.ApprovedBy
	}
	if dto.DateSignDay != nil {
		c.DateSignDay = dto.DateSignDay
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update company", "company_id", companyID, "error", err)
		return nil, err
	}

	return c, nil
}

// Delete removes a company and cascades to its time entries.
func (s *Service) Delete(userID, companyID int64) error {
	if _, err := s.GetByID(userID, companyID); err != nil {
		return err
	}

	if err := s.repo.DeleteWithEntries(companyID); err != nil {
		s.logger.Error("failed to delete company", "company_id", companyID, "error", err)
		return err
	}

	s.logger.Info("company deleted", "company_id", companyID, "user_id", userID)
	return nil
}
