package user

import (
	"errors"
	"time"
)

type User struct {
	ID                int64     `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	Name              string    `json:"name" db:"name"`
	Prefix            string    `json:"prefix" db:"prefix"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	SelectedCompanyID *int64    `json:"selected_company_id" db:"selected_company_id"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName is the form printed on timesheet documents, e.g. "Mr. Somchai J.".
func (u *User) DisplayName() string {
	if u.Prefix != "" {
		return u.Prefix + " " + u.Name
	}
	return u.Name
}

func (u *User) IsActiveUser() bool {
	return u.IsActive
}

var ErrNotFound = errors.New("user not found")
