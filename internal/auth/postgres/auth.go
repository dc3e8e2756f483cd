package auth

import (
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/tanasitp/timesheet-management/internal/auth"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPasswordForEmail(email string) (string, int64, error) {
	var passwordHash string
	var userID int64
	query := `SELECT id, password_hash FROM users WHERE email = ? AND is_active = true`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, auth.ErrInvalidCredentials
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

func (r *Repository) GetPasswordForID(userID int64) (string, error) {
	var passwordHash string
	query := `SELECT password_hash FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}
	return passwordHash, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, email, name, prefix, selected_company_id FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Prefix, &user.SelectedCompanyID); err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(email, name, prefix, passwordHash string) (*auth.User, error) {
	now := time.Now()
	query := `INSERT INTO users (email, name, prefix, password_hash, is_active, created_at, updated_at)
	          VALUES (?, ?, ?, ?, true, ?, ?) RETURNING id`

	var userID int64
	row := r.db.Raw(query, email, name, prefix, passwordHash, now, now).Row()
	if err := row.Scan(&userID); err != nil {
		return nil, err
	}

	return &auth.User{
		ID:     userID,
		Email:  email,
		Name:   name,
		Prefix: prefix,
	}, nil
}

func (r *Repository) UpdatePassword(userID int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`
	return r.db.Exec(query, passwordHash, time.Now(), userID).Error
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	query := `SELECT COUNT(1) FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
