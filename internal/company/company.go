package company

import (
	"errors"
	"time"
)

// Company is a workplace a user logs time against. Every company belongs to
// exactly one user; entries and reports are always scoped to a single
// user/company pair.
type Company struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Code        string    `json:"code" gorm:"column:code"`
	Description string    `json:"description" gorm:"column:description"`
	ApprovedBy  string    `json:"approved_by" gorm:"column:approved_by"`
	DateSignDay *int      `json:"date_sign_day" gorm:"column:date_sign_day"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNotOwner        = errors.New("company does not belong to user")
)
