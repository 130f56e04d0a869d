package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lshigami/skillgate/config"
)

var _ = Describe("NewConfig", func() {
	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}

	It("applies defaults", func() {
		cfg, err := config.NewConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.Port).To(Equal("8080"))
		Expect(cfg.Assessment.QuestionsPerSkill).To(Equal(3))
		Expect(cfg.Assessment.TTL).To(Equal(168 * time.Hour))
		Expect(cfg.AI.Provider).To(Equal("gemini"))
		Expect(cfg.AI.Concurrency).To(Equal(4))
	})

	It("reads overrides from the environment", func() {
		setEnv("AI_PROVIDER", " OpenAI ")
		setEnv("QUESTIONS_PER_SKILL", "5")
		setEnv("ASSESSMENT_TTL_HOURS", "24")
		setEnv("POOL_CACHE_TTL_MINUTES", "10")

		cfg, err := config.NewConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.AI.Provider).To(Equal("openai"))
		Expect(cfg.Assessment.QuestionsPerSkill).To(Equal(5))
		Expect(cfg.Assessment.TTL).To(Equal(24 * time.Hour))
		Expect(cfg.Redis.PoolCacheTTL).To(Equal(10 * time.Minute))
	})
})
