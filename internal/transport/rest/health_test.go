package rest

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	_ "github.com/mattn/go-sqlite3"
)

func TestRest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Rest Suite")
}

var _ = ginkgo.Describe("HealthHandler", func() {
	var db *sql.DB

	ginkgo.BeforeEach(func() {
		var err error
		db, err = sql.Open("sqlite3", ":memory:")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		db.Close()
	})

	ginkgo.It("should report healthy with connection pool details", func() {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)

		NewHealthHandler(db).healthCheckHandler(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

		var resp HealthResponse
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
		gomega.Expect(resp.Status).To(gomega.Equal(HealthHealthy))
		gomega.Expect(resp.Components).To(gomega.HaveKey("postgres"))
		gomega.Expect(resp.Components["postgres"].Details).To(gomega.HaveKey("open_connections"))
	})

	ginkgo.It("should report unhealthy with 503 when the database is unreachable", func() {
		gomega.Expect(db.Close()).To(gomega.Succeed())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)

		NewHealthHandler(db).healthCheckHandler(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusServiceUnavailable))

		var resp HealthResponse
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
		gomega.Expect(resp.Status).To(gomega.Equal(HealthUnhealthy))
		gomega.Expect(resp.Components["postgres"].Message).ToNot(gomega.BeEmpty())
	})

	ginkgo.It("should answer ping without touching the database", func() {
		gomega.Expect(db.Close()).To(gomega.Succeed())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)

		NewHealthHandler(db).pingHandler(rec, req)

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("OK"))
	})
})
