package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tanasitp/timesheet-management/internal/company"
)

func TestCompanyRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CompanyRepository Suite")
}

type SQLiteCompany struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null"`
	Name        string    `gorm:"not null"`
	Code        string    `gorm:"column:code"`
	Description string    `gorm:"column:description"`
	ApprovedBy  string    `gorm:"column:approved_by"`
	DateSignDay *int      `gorm:"column:date_sign_day"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteCompany) TableName() string {
	return "companies"
}

type SQLiteTimeEntry struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"column:user_id;not null"`
	CompanyID   int64  `gorm:"column:company_id;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"column:description"`
	EntryDate   string `gorm:"column:entry_date;not null"`
	StartTime   time.Time
	EndTime     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SQLiteTimeEntry) TableName() string {
	return "time_entries"
}

var _ = Describe("CompanyRepository", func() {
	var (
		db   *gorm.DB
		repo company.Repository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteCompany{}, &SQLiteTimeEntry{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewCompanyRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should create a company successfully", func() {
			signDay := 25
			c := &company.Company{
				UserID:      1,
				Name:        "ABC Corporation",
				Code:        "ABC",
				Description: "Main employer",
				ApprovedBy:  "John Smith (Manager)",
				DateSignDay: &signDay,
			}

			err := repo.Create(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).To(BeNumerically(">", 0))
		})
	})

	Describe("GetByID", func() {
		var created *company.Company

		BeforeEach(func() {
			created = &company.Company{
				UserID:     1,
				Name:       "XYZ Enterprise",
				Code:       "XYZ",
				ApprovedBy: "Jane Doe",
			}
			err := repo.Create(created)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should retrieve the company by ID", func() {
			retrieved, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Name).To(Equal("XYZ Enterprise"))
			Expect(retrieved.Code).To(Equal("XYZ"))
			Expect(retrieved.ApprovedBy).To(Equal("Jane Doe"))
		})

		It("should return ErrCompanyNotFound for non-existent ID", func() {
			retrieved, err := repo.GetByID(99999)
			Expect(err).To(Equal(company.ErrCompanyNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("GetByUserID", func() {
		BeforeEach(func() {
			for _, name := range []string{"StartupTech", "ABC Corporation"} {
				err := repo.Create(&company.Company{UserID: 1, Name: name})
				Expect(err).NotTo(HaveOccurred())
			}
			err := repo.Create(&company.Company{UserID: 2, Name: "Other Person Co"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should only return companies owned by the user, sorted by name", func() {
			companies, err := repo.GetByUserID(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(companies).To(HaveLen(2))
			Expect(companies[0].Name).To(Equal("ABC Corporation"))
			Expect(companies[1].Name).To(Equal("StartupTech"))
		})
	})

	Describe("DeleteWithEntries", func() {
		var created *company.Company

		BeforeEach(func() {
			created = &company.Company{UserID: 1, Name: "ABC Corporation"}
			err := repo.Create(created)
			Expect(err).NotTo(HaveOccurred())

			entries := []SQLiteTimeEntry{
				{UserID: 1, CompanyID: created.ID, Title: "Sprint planning", EntryDate: "2025-03-03", StartTime: time.Now()},
				{UserID: 1, CompanyID: created.ID, Title: "Code review", EntryDate: "2025-03-04", StartTime: time.Now()},
			}
			Expect(db.Create(&entries).Error).NotTo(HaveOccurred())
		})

		It("should delete the company and all of its entries", func() {
			err := repo.DeleteWithEntries(created.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.GetByID(created.ID)
			Expect(err).To(Equal(company.ErrCompanyNotFound))

			var count int64
			Expect(db.Model(&SQLiteTimeEntry{}).Where("company_id = ?", created.ID).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
