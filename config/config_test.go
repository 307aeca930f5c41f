package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/config"
)

var _ = Describe("config", func() {
	Context("LoadMap", func() {
		It("applies defaults for unset fields", func() {
			o, err := config.LoadMap(map[string]interface{}{
				"hash_tokens": []string{"K1", "K2"},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(o.Endpoint).To(Equal(config.DefaultEndpoint))
			Expect(o.HashEndpoint).To(Equal(config.DefaultHashEndpoint))
			Expect(o.ConnLimit).To(Equal(config.DefaultConnLimit))
		})

		It("rejects a malformed proxy URL", func() {
			_, err := config.LoadMap(map[string]interface{}{
				"proxy": "://not-a-url",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("EncryptVersion", func() {
		It("couples to api_version per the threshold", func() {
			Expect(config.Options{APIVersion: 0.45}.EncryptVersion()).To(BeEquivalentTo(1))
			Expect(config.Options{APIVersion: 0.51}.EncryptVersion()).To(BeEquivalentTo(3))
		})
	})
})
