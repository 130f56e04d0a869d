package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/skillgate/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiGenerator struct {
	client *genai.GenerativeModel
	model  string
}

// NewGeminiGenerator returns a generator backed by Gemini. Without an API key
// the generator still builds but every call fails, which routes callers to
// their fallbacks.
func NewGeminiGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation and grading will use fallbacks.")
		return &geminiGenerator{model: cfg.AI.GeminiModel}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.AI.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	modelName := cfg.AI.GeminiModel
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &geminiGenerator{client: client.GenerativeModel(modelName), model: modelName}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini client not initialized")
	}

	resp, err := g.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("Gemini API error")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Str("model", g.model).Msg("Gemini returned no candidates or parts in response.")
		return "", errors.New("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", errors.New("gemini returned no text content")
	}
	return out, nil
}
