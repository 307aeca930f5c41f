package duration_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/duration"
)

var _ = Describe("Parse", func() {
	It("treats a bare number as whole seconds", func() {
		d, err := duration.Parse("10")
		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(10 * time.Second))
	})

	It("accepts Go-style duration strings", func() {
		d, err := duration.Parse("1m30s")
		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(90 * time.Second))
	})
})

var _ = Describe("Default", func() {
	It("falls back to the given default on empty or malformed input", func() {
		Expect(duration.Default("", 5*time.Second)).To(Equal(5 * time.Second))
		Expect(duration.Default("not-a-duration", 5*time.Second)).To(Equal(5 * time.Second))
	})
})
