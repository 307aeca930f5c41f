package signaldist_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/signaldist"
)

var _ = Describe("TriangularFloat", func() {
	It("always stays within [min, max]", func() {
		for i := 0; i < 500; i++ {
			v := signaldist.TriangularFloat(-30, 30, 0)
			Expect(v).To(BeNumerically(">=", -30.0))
			Expect(v).To(BeNumerically("<=", 30.0))
		}
	})

	It("collapses to the single point on a degenerate range", func() {
		Expect(signaldist.TriangularFloat(5, 5, 5)).To(Equal(5.0))
	})
})

var _ = Describe("TriangularInt", func() {
	It("always stays within [min, max]", func() {
		for i := 0; i < 200; i++ {
			v := signaldist.TriangularInt(0, 10, 2)
			Expect(v).To(BeNumerically(">=", 0))
			Expect(v).To(BeNumerically("<=", 10))
		}
	})
})

var _ = Describe("WeightedPick", func() {
	It("only returns values present in the entry list, biased by weight", func() {
		entries := []signaldist.WeightedEntry[string]{
			{Value: "a", Weight: 1},
			{Value: "b", Weight: 1},
			{Value: "c", Weight: 98},
		}
		counts := map[string]int{}
		for i := 0; i < 300; i++ {
			counts[signaldist.WeightedPick(entries)]++
		}
		Expect(counts["c"]).To(BeNumerically(">", counts["a"]+counts["b"]))
	})
})

var _ = Describe("UniformFloat", func() {
	It("stays within [min, max)", func() {
		for i := 0; i < 200; i++ {
			v := signaldist.UniformFloat(10, 20)
			Expect(v).To(BeNumerically(">=", 10.0))
			Expect(v).To(BeNumerically("<", 20.0))
		}
	})
})
