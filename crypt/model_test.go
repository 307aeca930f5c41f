package crypt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/crypt"
)

var _ = Describe("crypt", func() {
	It("round-trips plaintext through Encrypt then Decrypt", func() {
		key, err := crypt.GenKey()
		Expect(err).ToNot(HaveOccurred())

		e, err := crypt.New(key)
		Expect(err).ToNot(HaveOccurred())

		plain := []byte("signal log bytes")
		ct, err := e.Encrypt(plain, 123456, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(ct).ToNot(Equal(plain))

		got, err := e.Decrypt(ct, 123456, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(plain))
	})

	It("fails to decrypt when the version byte doesn't match", func() {
		key, err := crypt.GenKey()
		Expect(err).ToNot(HaveOccurred())
		e, err := crypt.New(key)
		Expect(err).ToNot(HaveOccurred())

		ct, err := e.Encrypt([]byte("x"), 1, 1)
		Expect(err).ToNot(HaveOccurred())

		_, err = e.Decrypt(ct, 1, 2)
		Expect(err).To(HaveOccurred())
	})
})
