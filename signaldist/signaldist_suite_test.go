package signaldist_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGolibSignaldistHelper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Signaldist Suite")
}
