package user

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tanasitp/timesheet-management/internal/user"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(userID int64) (*user.User, error) {
	var u user.User
	query := `SELECT id, email, name, prefix, password_hash, selected_company_id, is_active, created_at, updated_at
	          FROM users WHERE id = $1`

	if err := r.db.Get(&u, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdateProfile(userID int64, dto user.UpdateProfileDTO) (*user.User, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}
	idx := 2

	if dto.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *dto.Name)
		idx++
	}
	if dto.Prefix != nil {
		sets = append(sets, fmt.Sprintf("prefix = $%d", idx))
		args = append(args, *dto.Prefix)
		idx++
	}
	if dto.SelectedCompanyID != nil {
		sets = append(sets, fmt.Sprintf("selected_company_id = $%d", idx))
		args = append(args, *dto.SelectedCompanyID)
		idx++
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)
	args = append(args, userID)

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, user.ErrNotFound
	}

	return r.GetByID(userID)
}

func (r *Repository) CompanyBelongsToUser(userID, companyID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1 AND user_id = $2)`

	if err := r.db.Get(&exists, query, companyID, userID); err != nil {
		return false, fmt.Errorf("company ownership query: %w", err)
	}
	return exists, nil
}
