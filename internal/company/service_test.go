package company

import (
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestCompany(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Company Module Suite")
}

type mockCompanyRepository struct {
	companies map[int64]*Company
	nextID    int64
	deleted   []int64
}

func newMockCompanyRepository() *mockCompanyRepository {
	return &mockCompanyRepository{
		companies: make(map[int64]*Company),
		nextID:    1,
	}
}

func (m *mockCompanyRepository) Create(c *Company) error {
	c.ID = m.nextID
	m.nextID++
	stored := *c
	m.companies[c.ID] = &stored
	return nil
}

func (m *mockCompanyRepository) GetByID(id int64) (*Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCompanyRepository) GetByUserID(userID int64) ([]*Company, error) {
	var out []*Company
	for _, c := range m.companies {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockCompanyRepository) Update(c *Company) error {
	if _, ok := m.companies[c.ID]; !ok {
		return ErrCompanyNotFound
	}
	stored := *c
	m.companies[c.ID] = &stored
	return nil
}

func (m *mockCompanyRepository) DeleteWithEntries(id int64) error {
	if _, ok := m.companies[id]; !ok {
		return ErrCompanyNotFound
	}
	delete(m.companies, id)
	m.deleted = append(m.deleted, id)
	return nil
}

var _ = ginkgo.Describe("CompanyService", func() {
	var (
		service  *Service
		mockRepo *mockCompanyRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockCompanyRepository()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, lg)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should persist a company for the owner", func() {
			signDay := 28
			c, err := service.Create(1, CreateCompanyDTO{
				Name:        "ABC Corporation",
				Code:        "ABC",
				ApprovedBy:  "John Smith (Manager)",
				DateSignDay: &signDay,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(c.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(c.UserID).To(gomega.Equal(int64(1)))
			gomega.Expect(*c.DateSignDay).To(gomega.Equal(28))
		})

		ginkgo.It("should reject a missing name", func() {
			_, err := service.Create(1, CreateCompanyDTO{})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})

		ginkgo.It("should reject an out-of-range date_sign_day", func() {
			signDay := 32
			_, err := service.Create(1, CreateCompanyDTO{Name: "ABC", DateSignDay: &signDay})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.It("should refuse access to another user's company", func() {
			c, err := service.Create(1, CreateCompanyDTO{Name: "ABC Corporation"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.GetByID(2, c.ID)
			gomega.Expect(err).To(gomega.Equal(ErrNotOwner))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should only change the provided fields", func() {
			c, err := service.Create(1, CreateCompanyDTO{
				Name:       "ABC Corporation",
				Code:       "ABC",
				ApprovedBy: "John Smith (Manager)",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			newName := "ABC Corp Ltd"
			updated, err := service.Update(1, c.ID, UpdateCompanyDTO{Name: &newName})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Name).To(gomega.Equal("ABC Corp Ltd"))
			gomega.Expect(updated.Code).To(gomega.Equal("ABC"))
			gomega.Expect(updated.ApprovedBy).To(gomega.Equal("John Smith (Manager)"))
		})

		ginkgo.It("should refuse updates from a non-owner", func() {
			c, err := service.Create(1, CreateCompanyDTO{Name: "ABC Corporation"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			newName := "Hijacked"
			_, err = service.Update(2, c.ID, UpdateCompanyDTO{Name: &newName})
			gomega.Expect(err).To(gomega.Equal(ErrNotOwner))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should cascade through the repository", func() {
			c, err := service.Create(1, CreateCompanyDTO{Name: "ABC Corporation"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(1, c.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.deleted).To(gomega.ContainElement(c.ID))
		})

		ginkgo.It("should refuse deletion from a non-owner", func() {
			c, err := service.Create(1, CreateCompanyDTO{Name: "ABC Corporation"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			err = service.Delete(2, c.ID)
			gomega.Expect(err).To(gomega.Equal(ErrNotOwner))
			gomega.Expect(mockRepo.deleted).To(gomega.BeEmpty())
		})
	})
})
