package atomic_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/atomic"
)

var _ = Describe("atomic", func() {
	Context("Uint32Counter", func() {
		It("stays consistent under concurrent Incr calls", func() {
			c := atomic.NewUint32Counter(1)
			var wg sync.WaitGroup
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					c.Incr()
				}()
			}
			wg.Wait()
			Expect(c.Load()).To(BeEquivalentTo(101))
		})
	})

	Context("Bool", func() {
		It("only swaps when the expected old value matches", func() {
			b := &atomic.Bool{}
			Expect(b.Load()).To(BeFalse())
			Expect(b.CompareAndSwap(false, true)).To(BeTrue())
			Expect(b.CompareAndSwap(false, true)).To(BeFalse())
			Expect(b.Load()).To(BeTrue())
		})
	})
})
