package crypt_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGolibCryptHelper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Crypt Suite")
}
