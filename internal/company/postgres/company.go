package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/tanasitp/timesheet-management/internal/company"
)

// CompanyRepository implements the company.Repository interface using GORM
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(c *company.Company) error {
	return r.db.Create(c).Error
}

func (r *CompanyRepository) GetByID(id int64) (*company.Company, error) {
	var c company.Company
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) GetByUserID(userID int64) ([]*company.Company, error) {
	var companies []*company.Company
	err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) Update(c *company.Company) error {
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}

// DeleteWithEntries removes the company and its time entries atomically.
// Entries go first so a failure never leaves them orphaned.
func (r *CompanyRepository) DeleteWithEntries(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM time_entries WHERE company_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM companies WHERE id = ?`, id).Error
	})
}
