package auth_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/auth"
)

var _ = Describe("ticket", func() {
	Context("CheckTicket", func() {
		It("is only valid inside the freshness window", func() {
			a := auth.NewPTC("u", "p", "", nil, nil)
			Expect(a.CheckTicket()).To(BeFalse())

			now := time.Now().UnixMilli()
			a.SetTicket(auth.Ticket{ExpireMs: now + 20_000})
			Expect(a.CheckTicket()).To(BeTrue())

			a.SetTicket(auth.Ticket{ExpireMs: now + 5_000})
			Expect(a.CheckTicket()).To(BeFalse())
		})
	})

	Context("IsNewTicket", func() {
		It("reports true only when the candidate expiry is later", func() {
			a := auth.NewPTC("u", "p", "", nil, nil)
			Expect(a.IsNewTicket(100)).To(BeTrue())

			a.SetTicket(auth.Ticket{ExpireMs: 100})
			Expect(a.IsNewTicket(50)).To(BeFalse())
			Expect(a.IsNewTicket(200)).To(BeTrue())
		})
	})
})
