package user

import (
	"fmt"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	UpdateProfile(userID int64, dto UpdateProfileDTO) (*User, error)
	CompanyBelongsToUser(userID, companyID int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// UpdateProfile applies the changed fields. A selected company must belong to
// the user making the change.
func (s *Service) UpdateProfile(userID int64, dto UpdateProfileDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.SelectedCompanyID != nil {
		owned, err := s.repo.CompanyBelongsToUser(userID, *dto.SelectedCompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to check company ownership: %w", err)
		}
		if !owned {
			return nil, ValidationError{Msg: "selected company does not belong to user"}
		}
	}

	u, err := s.repo.UpdateProfile(userID, dto)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return u, nil
}
