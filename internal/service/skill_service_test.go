package service_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lshigami/skillgate/internal/service"
)

var _ = Describe("NormalizeSkills", func() {
	It("keeps short segments as acronyms and title-cases the rest", func() {
		Expect(service.NormalizeSkills("sql, Machine Learning, ai")).To(Equal([]string{"SQL", "Machine Learning", "AI"}))
	})

	It("upper-cases every purely alphabetic segment of two to four letters", func() {
		Expect(service.NormalizeSkills("rust, java, kafka, r")).To(Equal([]string{"RUST", "JAVA", "Kafka", "R"}))
	})

	It("drops empty segments and surrounding whitespace", func() {
		Expect(service.NormalizeSkills("  , ,python,, ")).To(Equal([]string{"Python"}))
		Expect(service.NormalizeSkills("")).To(BeEmpty())
	})

	It("starts a new word after any non-letter", func() {
		Expect(service.NormalizeSkills("node.js, c++, DOCKER compose")).To(Equal([]string{"Node.Js", "C++", "Docker Compose"}))
	})

	It("preserves order and repeats", func() {
		Expect(service.NormalizeSkills("go, python, GO")).To(Equal([]string{"GO", "Python", "GO"}))
	})

	It("is idempotent", func() {
		for _, raw := range []string{"sql, Machine Learning, ai, c++", "aws,kubernetes , react native", "C#, .net"} {
			once := service.NormalizeSkills(raw)
			Expect(service.NormalizeSkills(strings.Join(once, ","))).To(Equal(once), raw)
		}
	})
})

var _ = Describe("MatchResume", func() {
	const resume = `Senior engineer. Experienced in C++ and python.
Built REST APIs on C#/.NET and worked on machine
learning pipelines. Some JavaScript.`

	It("matches whole words case-insensitively", func() {
		matches := service.MatchResume(resume, []string{"C++", "Python", "REST", "Java", "C#", "Machine Learning", "Go"})
		Expect(matches).To(Equal(map[string]bool{
			"C++":              true,
			"Python":           true,
			"REST":             true,
			"Java":             false,
			"C#":               true,
			"Machine Learning": true,
			"Go":               false,
		}))
	})

	It("matches at the edges of the text", func() {
		Expect(service.MatchResume("sql", []string{"SQL"})).To(HaveKeyWithValue("SQL", true))
	})

	It("never matches an empty resume", func() {
		Expect(service.MatchResume("", []string{"Python"})).To(HaveKeyWithValue("Python", false))
	})
})

var _ = Describe("Eligibility", func() {
	It("computes the match percentage against the threshold", func() {
		report := service.Eligibility(map[string]bool{"Python": true, "SQL": false}, 70)
		Expect(report.MatchPercent).To(Equal(50.0))
		Expect(report.Eligible).To(BeFalse())
		Expect(report.FoundSkills).To(Equal(1))
		Expect(report.TotalSkills).To(Equal(2))
		Expect(report.MatchedSkills).To(Equal([]string{"Python"}))
		Expect(report.MissingSkills).To(Equal([]string{"SQL"}))
	})

	It("rounds to two decimals and accepts a percentage equal to the threshold", func() {
		matches := map[string]bool{"A": true, "B": true, "C": false}
		Expect(service.Eligibility(matches, 66).MatchPercent).To(Equal(66.67))
		Expect(service.Eligibility(matches, 66).Eligible).To(BeTrue())
		Expect(service.Eligibility(matches, 67).Eligible).To(BeFalse())
		Expect(service.Eligibility(map[string]bool{"A": true, "B": false}, 50).Eligible).To(BeTrue())
	})

	It("is never eligible without skills", func() {
		report := service.Eligibility(map[string]bool{}, 0)
		Expect(report.MatchPercent).To(BeZero())
		Expect(report.Eligible).To(BeFalse())
	})

	It("agrees with MatchResume on normalized skills", func() {
		skills := service.NormalizeSkills("python, sql, aws, kotlin")
		report := service.Eligibility(service.MatchResume("Python and AWS on weekends", skills), 50)
		Expect(report.MatchedSkills).To(Equal([]string{"AWS", "Python"}))
		Expect(report.MissingSkills).To(Equal([]string{"Kotlin", "SQL"}))
		Expect(report.Eligible).To(BeTrue())
	})
})
