package timesheet_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTimesheet(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Timesheet Suite")
}
