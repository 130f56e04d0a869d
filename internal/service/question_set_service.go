package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/skillgate/config"
	"github.com/lshigami/skillgate/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// poolBuffer is how many extra candidates are requested per skill so that
// selection has something to choose from.
const poolBuffer = 2

var enumerationMarker = regexp.MustCompile(`^(?:\(?\d+\s*[.):\-]|[-*•])\s*`)

// PoolCache caches raw generated pools per skill.
type PoolCache interface {
	Get(ctx context.Context, skill string, count int) ([]string, bool)
	Set(ctx context.Context, skill string, count int, pool []string)
}

// SkillQuestions is one skill's question list. Slices of it keep skill order
// explicit, which a map would not.
type SkillQuestions struct {
	Skill     string
	Questions []string
}

type QuestionSetService interface {
	// RequestPool asks the generator for countPerSkill+2 candidates per
	// distinct skill. A failing skill gets generic questions and never affects
	// its siblings.
	RequestPool(ctx context.Context, skills []string, countPerSkill int) []SkillQuestions
	// SelectFinal shuffles and truncates each skill's pool to countPerSkill.
	SelectFinal(pool []SkillQuestions, countPerSkill int) []SkillQuestions
	// Build runs RequestPool and SelectFinal and materializes unsaved
	// questions with increasing order indexes.
	Build(ctx context.Context, assessmentID uint, skills []string, countPerSkill int) []model.Question
}

type questionSetService struct {
	generator   TextGenerator
	cache       PoolCache
	concurrency int

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuestionSetService(generator TextGenerator, cache PoolCache, cfg *config.Config) QuestionSetService {
	seed := cfg.Assessment.QuestionSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	concurrency := cfg.AI.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &questionSetService{
		generator:   generator,
		cache:       cache,
		concurrency: concurrency,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (s *questionSetService) RequestPool(ctx context.Context, skills []string, countPerSkill int) []SkillQuestions {
	skills = uniqueSkills(skills)
	requested := countPerSkill + poolBuffer
	pool := make([]SkillQuestions, len(skills))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, skill := range skills {
		g.Go(func() error {
			pool[i] = SkillQuestions{Skill: skill, Questions: s.generateForSkill(gctx, skill, requested)}
			return nil
		})
	}
	// generateForSkill absorbs per-skill failures, so no goroutine returns an error.
	_ = g.Wait()
	return pool
}

func (s *questionSetService) generateForSkill(ctx context.Context, skill string, requested int) []string {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, skill, requested); ok {
			log.Debug().Str("skill", skill).Int("count", len(cached)).Msg("Question pool served from cache")
			return cached
		}
	}

	raw, err := s.generator.Generate(ctx, questionPrompt(skill, requested))
	if err != nil {
		log.Warn().Err(err).Str("skill", skill).Msg("Question generation failed, using fallback questions")
		return fallbackQuestions(skill)
	}

	questions := ParseQuestionList(raw, requested)
	if len(questions) == 0 {
		log.Warn().Str("skill", skill).Msg("Question generation returned no usable lines, using fallback questions")
		return fallbackQuestions(skill)
	}

	if s.cache != nil {
		s.cache.Set(ctx, skill, requested, questions)
	}
	return questions
}

func (s *questionSetService) SelectFinal(pool []SkillQuestions, countPerSkill int) []SkillQuestions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SelectFinal(pool, countPerSkill, s.rng)
}

func (s *questionSetService) Build(ctx context.Context, assessmentID uint, skills []string, countPerSkill int) []model.Question {
	selected := s.SelectFinal(s.RequestPool(ctx, skills, countPerSkill), countPerSkill)

	questions := make([]model.Question, 0, len(selected)*countPerSkill)
	order := 0
	for _, entry := range selected {
		for _, text := range entry.Questions {
			questions = append(questions, model.Question{
				AssessmentID: assessmentID,
				Skill:        entry.Skill,
				Text:         text,
				Type:         model.QuestionTypeText,
				Difficulty:   model.DifficultyDefault,
				OrderIndex:   order,
			})
			order++
		}
	}
	return questions
}

// SelectFinal shuffles each skill's pool with rng and keeps at most
// countPerSkill items. Short pools are kept whole. The input is not modified.
func SelectFinal(pool []SkillQuestions, countPerSkill int, rng *rand.Rand) []SkillQuestions {
	if countPerSkill < 0 {
		countPerSkill = 0
	}
	out := make([]SkillQuestions, 0, len(pool))
	for _, entry := range pool {
		shuffled := append([]string(nil), entry.Questions...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if len(shuffled) > countPerSkill {
			shuffled = shuffled[:countPerSkill]
		}
		out = append(out, SkillQuestions{Skill: entry.Skill, Questions: shuffled})
	}
	return out
}

// ParseQuestionList splits generated text into questions, dropping blank
// lines and leading enumeration markers. limit <= 0 keeps everything.
func ParseQuestionList(raw string, limit int) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(enumerationMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if limit > 0 && len(questions) == limit {
			break
		}
	}
	return questions
}

func fallbackQuestions(skill string) []string {
	return []string{
		fmt.Sprintf("Explain the core concepts of %s", skill),
		fmt.Sprintf("Describe a project where you used %s", skill),
		fmt.Sprintf("What are the best practices when working with %s?", skill),
	}
}

func questionPrompt(skill string, count int) string {
	return fmt.Sprintf(`Generate %d interview questions to test a candidate's practical knowledge in %s.
Mix beginner, intermediate, and advanced difficulty.
Only return the questions as a numbered list, one question per line.`, count, skill)
}
