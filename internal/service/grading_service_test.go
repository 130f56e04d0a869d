package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lshigami/skillgate/internal/service"
)

func score(v float64) *float64 { return &v }
func seconds(v int) *int       { return &v }

var _ = Describe("ParseGrade", func() {
	It("reads score and feedback lines", func() {
		grade, err := service.ParseGrade("Score: 8\nFeedback: Solid answer")
		Expect(err).NotTo(HaveOccurred())
		Expect(grade.Score).To(Equal(8.0))
		Expect(grade.Feedback).To(Equal("Solid answer"))
		Expect(grade.Degraded).To(BeFalse())
	})

	It("is case-insensitive and keeps colons inside the feedback", func() {
		grade, err := service.ParseGrade("Sure.\nscore: 7.5/10\nFEEDBACK: good: but shallow")
		Expect(err).NotTo(HaveOccurred())
		Expect(grade.Score).To(Equal(7.5))
		Expect(grade.Feedback).To(Equal("good: but shallow"))
	})

	It("clamps the score to 0..10", func() {
		high, err := service.ParseGrade("Score: 12")
		Expect(err).NotTo(HaveOccurred())
		Expect(high.Score).To(Equal(10.0))

		low, err := service.ParseGrade("Score: -3")
		Expect(err).NotTo(HaveOccurred())
		Expect(low.Score).To(BeZero())
	})

	It("defaults a missing score to 0 and missing feedback to a placeholder", func() {
		grade, err := service.ParseGrade("The answer was fine.")
		Expect(err).NotTo(HaveOccurred())
		Expect(grade.Score).To(BeZero())
		Expect(grade.Feedback).To(Equal("No feedback available"))
	})

	It("rejects a score that is not a number", func() {
		_, err := service.ParseGrade("Score: excellent\nFeedback: nice")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("GradingService", func() {
	var (
		ctx context.Context
		gen *mockGenerator
		svc service.GradingService
	)

	BeforeEach(func() {
		ctx = context.Background()
		gen = &mockGenerator{}
		svc = service.NewGradingService(gen)
	})

	It("grades through the generator", func() {
		gen.generateFn = func(_ context.Context, prompt string) (string, error) {
			Expect(prompt).To(ContainSubstring("Skill: Python"))
			Expect(prompt).To(ContainSubstring("Candidate Answer: generators are lazy"))
			return "Score: 9\nFeedback: Precise", nil
		}
		grade := svc.Grade(ctx, "Python", "What is a generator?", "generators are lazy")
		Expect(grade).To(Equal(service.Grade{Score: 9, Feedback: "Precise"}))
	})

	It("falls back to a degraded zero score when the generator fails", func() {
		gen.generateFn = func(context.Context, string) (string, error) { return "", errors.New("timeout") }
		grade := svc.Grade(ctx, "Python", "q", "a")
		Expect(grade).To(Equal(service.Grade{Score: 0, Feedback: "Error occurred during grading", Degraded: true}))
	})

	It("falls back when the reply cannot be parsed", func() {
		gen.generateFn = func(context.Context, string) (string, error) { return "Score: N/A", nil }
		Expect(svc.Grade(ctx, "Python", "q", "a").Degraded).To(BeTrue())
	})

	It("returns generated recommendations or the fallback text", func() {
		gen.generateFn = func(_ context.Context, prompt string) (string, error) {
			Expect(prompt).To(ContainSubstring("- Python: 8.00/10"))
			return "  Keep going.  ", nil
		}
		summary := service.Summary{SkillScores: map[string]float64{"Python": 8}, OverallScore: 8}
		Expect(svc.Recommend(ctx, summary)).To(Equal("Keep going."))

		gen.generateFn = func(context.Context, string) (string, error) { return "", errors.New("down") }
		Expect(svc.Recommend(ctx, summary)).To(Equal("Unable to generate recommendations at this time."))
	})
})

var _ = Describe("Aggregate", func() {
	It("averages per skill and then across skills", func() {
		summary, err := service.Aggregate([]service.GradedAnswer{
			{Skill: "A", Score: score(10)},
			{Skill: "A", Score: score(10)},
			{Skill: "B", Score: score(0)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.SkillScores).To(Equal(map[string]float64{"A": 10, "B": 0}))
		Expect(summary.OverallScore).To(Equal(5.0))
		Expect(summary.IsPassed).To(BeFalse())
		Expect(summary.Strengths).To(Equal([]string{"A"}))
		Expect(summary.Weaknesses).To(Equal([]string{"B"}))
		Expect(summary.TotalQuestions).To(Equal(3))
	})

	It("rounds to two decimals and passes at 6.0", func() {
		summary, err := service.Aggregate([]service.GradedAnswer{
			{Skill: "Go", Score: score(7)},
			{Skill: "Go", Score: score(8)},
			{Skill: "Go", Score: score(8)},
			{Skill: "SQL", Score: score(4.33)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.SkillScores["Go"]).To(Equal(7.67))
		Expect(summary.OverallScore).To(Equal(6.0))
		Expect(summary.IsPassed).To(BeTrue())
		Expect(summary.Strengths).To(Equal([]string{"Go"}))
		Expect(summary.Weaknesses).To(Equal([]string{"SQL"}))
	})

	It("counts a missing score as zero", func() {
		summary, err := service.Aggregate([]service.GradedAnswer{
			{Skill: "A", Score: nil},
			{Skill: "A", Score: score(8)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.SkillScores["A"]).To(Equal(4.0))
		Expect(summary.Strengths).To(BeEmpty())
		Expect(summary.Weaknesses).To(Equal([]string{"A"}))
	})

	It("totals time and degraded answers", func() {
		summary, err := service.Aggregate([]service.GradedAnswer{
			{Skill: "A", Score: score(6), TimeSpentSeconds: seconds(30)},
			{Skill: "A", Score: score(0), TimeSpentSeconds: seconds(45), Degraded: true},
			{Skill: "A", Score: score(6)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.TotalTimeSeconds).To(Equal(75))
		Expect(summary.DegradedAnswers).To(Equal(1))
	})

	It("refuses an empty answer set", func() {
		_, err := service.Aggregate(nil)
		Expect(err).To(MatchError(service.ErrNoAnswers))
	})

	It("builds a result record from the summary", func() {
		summary, err := service.Aggregate([]service.GradedAnswer{{Skill: "A", Score: score(9)}})
		Expect(err).NotTo(HaveOccurred())

		result := service.BuildResult(4, summary, "Great work")
		Expect(result.AssessmentID).To(Equal(uint(4)))
		Expect(result.OverallScore).To(Equal(9.0))
		Expect(result.SkillScores.Data()).To(Equal(map[string]float64{"A": 9}))
		Expect([]string(result.Strengths)).To(Equal([]string{"A"}))
		Expect(result.IsPassed).To(BeTrue())
		Expect(result.Recommendations).To(Equal("Great work"))
	})
})
