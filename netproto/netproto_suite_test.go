package netproto_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGolibNetprotoHelper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Netproto Suite")
}
