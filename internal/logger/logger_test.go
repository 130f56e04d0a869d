package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/lshigami/skillgate/internal/logger"
)

var _ = Describe("Init", func() {
	AfterEach(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	It("applies a known level", func() {
		logger.Init(" DEBUG ", false)
		Expect(zerolog.GlobalLevel()).To(Equal(zerolog.DebugLevel))
	})

	It("falls back to info for unknown or empty levels", func() {
		logger.Init("loud", false)
		Expect(zerolog.GlobalLevel()).To(Equal(zerolog.InfoLevel))
		logger.Init("", true)
		Expect(zerolog.GlobalLevel()).To(Equal(zerolog.InfoLevel))
	})
})

var _ = Describe("Truncate", func() {
	It("keeps short text", func() {
		Expect(logger.Truncate("  hello ", 10)).To(Equal("hello"))
	})

	It("cuts on runes", func() {
		Expect(logger.Truncate("héllo wörld", 5)).To(Equal("héllo..."))
	})

	It("returns nothing for a non-positive limit", func() {
		Expect(logger.Truncate("hello", 0)).To(BeEmpty())
	})
})
