package service

import (
	"context"
	"fmt"

	"github.com/lshigami/skillgate/config"
	"github.com/rs/zerolog/log"
)

// TextGenerator is the external generation capability used for question
// pools, grading and recommendations. Implementations return plain text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator builds the generator selected by AI_PROVIDER.
func NewTextGenerator(cfg *config.Config) (TextGenerator, error) {
	switch cfg.AI.Provider {
	case "", "gemini":
		return NewGeminiGenerator(cfg)
	case "openai":
		return NewOpenAIGenerator(cfg)
	default:
		log.Error().Str("provider", cfg.AI.Provider).Msg("Unknown AI provider")
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.AI.Provider)
	}
}
