package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lshigami/skillgate/internal/logger"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	gradingFailedFeedback  = "Error occurred during grading"
	noFeedbackAvailable    = "No feedback available"
	recommendationFallback = "Unable to generate recommendations at this time."

	maxScore      = 10.0
	passScore     = 6.0
	strengthScore = 7.0
	weaknessScore = 6.0
)

// Grade is the outcome of grading one answer. Degraded is set when the
// score came from the zero-score fallback rather than the grader.
type Grade struct {
	Score    float64
	Feedback string
	Degraded bool
}

// GradedAnswer is the slice of an answer that aggregation needs.
type GradedAnswer struct {
	Skill            string
	Score            *float64
	TimeSpentSeconds *int
	Degraded         bool
}

// Summary is the aggregated outcome of a completed assessment.
type Summary struct {
	SkillScores      map[string]float64
	OverallScore     float64
	Strengths        []string
	Weaknesses       []string
	IsPassed         bool
	TotalQuestions   int
	TotalTimeSeconds int
	DegradedAnswers  int
}

type GradingService interface {
	// Grade never fails; grader errors collapse into the zero-score fallback.
	Grade(ctx context.Context, skill, question, answer string) Grade
	Recommend(ctx context.Context, summary Summary) string
}

type gradingService struct {
	generator TextGenerator
}

func NewGradingService(generator TextGenerator) GradingService {
	return &gradingService{generator: generator}
}

func (s *gradingService) Grade(ctx context.Context, skill, question, answer string) Grade {
	reply, err := s.generator.Generate(ctx, gradingPrompt(skill, question, answer))
	if err != nil {
		log.Warn().Err(err).Str("skill", skill).Msg("Grading failed, recording zero score")
		return Grade{Score: 0, Feedback: gradingFailedFeedback, Degraded: true}
	}

	grade, err := ParseGrade(reply)
	if err != nil {
		log.Warn().Err(err).Str("skill", skill).Str("reply", logger.Truncate(reply, 200)).Msg("Unparseable grading reply, recording zero score")
		return Grade{Score: 0, Feedback: gradingFailedFeedback, Degraded: true}
	}
	return grade
}

// ParseGrade reads the "Score:" and "Feedback:" lines of a grading reply.
// A missing score line yields 0; a score that is not a number is an error.
func ParseGrade(reply string) (Grade, error) {
	grade := Grade{Feedback: noFeedbackAvailable}
	var scoreSeen, feedbackSeen bool

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case !scoreSeen && strings.HasPrefix(lower, "score:"):
			scoreSeen = true
			score, err := parseScore(line[len("score:"):])
			if err != nil {
				return Grade{}, err
			}
			grade.Score = score
		case !feedbackSeen && strings.HasPrefix(lower, "feedback:"):
			feedbackSeen = true
			if _, rest, ok := strings.Cut(line, ":"); ok && strings.TrimSpace(rest) != "" {
				grade.Feedback = strings.TrimSpace(rest)
			}
		}
	}
	return grade, nil
}

// parseScore accepts "7", "7.5" and "7/10".
func parseScore(raw string) (float64, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty score value")
	}
	token, _, _ := strings.Cut(fields[0], "/")
	score, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("invalid score value %q", fields[0])
	}
	return math.Max(0, math.Min(maxScore, score)), nil
}

func (s *gradingService) Recommend(ctx context.Context, summary Summary) string {
	reply, err := s.generator.Generate(ctx, recommendationPrompt(summary))
	if err != nil {
		log.Warn().Err(err).Msg("Recommendation generation failed, using fallback text")
		return recommendationFallback
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return recommendationFallback
	}
	return reply
}

// Aggregate groups answers by skill. Each skill scores the mean of its
// answers and the overall score is the mean of the skill scores, both
// rounded to 2 decimals.
func Aggregate(answers []GradedAnswer) (Summary, error) {
	if len(answers) == 0 {
		return Summary{}, ErrNoAnswers
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	summary := Summary{
		SkillScores:    make(map[string]float64),
		Strengths:      []string{},
		Weaknesses:     []string{},
		TotalQuestions: len(answers),
	}
	for _, a := range answers {
		if a.Score != nil {
			sums[a.Skill] += *a.Score
		}
		counts[a.Skill]++
		if a.TimeSpentSeconds != nil {
			summary.TotalTimeSeconds += *a.TimeSpentSeconds
		}
		if a.Degraded {
			summary.DegradedAnswers++
		}
	}

	total := 0.0
	for skill, n := range counts {
		mean := roundTo(sums[skill]/float64(n), 2)
		summary.SkillScores[skill] = mean
		total += mean
		if mean >= strengthScore {
			summary.Strengths = append(summary.Strengths, skill)
		}
		if mean < weaknessScore {
			summary.Weaknesses = append(summary.Weaknesses, skill)
		}
	}
	sort.Strings(summary.Strengths)
	sort.Strings(summary.Weaknesses)

	summary.OverallScore = roundTo(total/float64(len(counts)), 2)
	summary.IsPassed = summary.OverallScore >= passScore
	return summary, nil
}

// GradedAnswersFrom reads stored answers. The question association must be loaded.
func GradedAnswersFrom(answers []model.Answer) []GradedAnswer {
	out := make([]GradedAnswer, 0, len(answers))
	for _, a := range answers {
		out = append(out, GradedAnswer{
			Skill:            a.Question.Skill,
			Score:            a.AIScore,
			TimeSpentSeconds: a.TimeSpentSeconds,
			Degraded:         a.GradingDegraded,
		})
	}
	return out
}

func BuildResult(assessmentID uint, summary Summary, recommendations string) model.AssessmentResult {
	result := model.AssessmentResult{
		AssessmentID:     assessmentID,
		OverallScore:     summary.OverallScore,
		TotalQuestions:   summary.TotalQuestions,
		TotalTimeSeconds: summary.TotalTimeSeconds,
		Strengths:        summary.Strengths,
		Weaknesses:       summary.Weaknesses,
		Recommendations:  recommendations,
		IsPassed:         summary.IsPassed,
		DegradedAnswers:  summary.DegradedAnswers,
		SkillScores:      datatypes.NewJSONType(summary.SkillScores),
	}
	return result
}

func gradingPrompt(skill, question, answer string) string {
	return fmt.Sprintf(`You are an expert technical interviewer.
Evaluate the candidate's answer to the following question.

Skill: %s
Question: %s
Candidate Answer: %s

Score the answer from 0 to 10, considering correctness, clarity, and completeness.
Provide a short feedback summary.
Format your response as:
Score: <number>
Feedback: <text>`, skill, question, answer)
}

func recommendationPrompt(summary Summary) string {
	skills := make([]string, 0, len(summary.SkillScores))
	for skill := range summary.SkillScores {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	var b strings.Builder
	for _, skill := range skills {
		fmt.Fprintf(&b, "- %s: %.2f/10\n", skill, summary.SkillScores[skill])
	}
	return fmt.Sprintf(`Based on the following assessment results, provide constructive recommendations for the candidate.

Overall Score: %.2f/10
Skill Scores:
%s
Provide specific, actionable recommendations for skills scored below 7/10.
Also highlight their strengths. Keep the response professional and encouraging.`, summary.OverallScore, b.String())
}
