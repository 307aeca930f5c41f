package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/pogoclient/logger"
)

var _ = Describe("Default", func() {
	It("returns the same logger instance on every call", func() {
		Expect(logger.Default()).ToNot(BeNil())
		Expect(logger.Default()).To(BeIdenticalTo(logger.Default()))
	})
})

var _ = Describe("Entry", func() {
	It("logs through WithFields without panicking", func() {
		l := logger.New()
		l.SetLevel(logger.DebugLevel)

		e := l.WithFields(logger.Fields{"component": "transport"})
		Expect(e).ToNot(BeNil())

		Expect(func() {
			e.Debug("dialing")
			e.WithFields(logger.Fields{"retry": 1}).Warn("retrying")
		}).ToNot(Panic())
	})
})
