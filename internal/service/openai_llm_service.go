package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/skillgate/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

type openAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(cfg *config.Config) (TextGenerator, error) {
	modelName := cfg.AI.OpenAIModel
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	if cfg.AI.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. Question generation and grading will use fallbacks.")
		return &openAIGenerator{model: modelName}, nil
	}
	client := openai.NewClient(option.WithAPIKey(cfg.AI.OpenAIAPIKey))
	return &openAIGenerator{client: &client, model: modelName}, nil
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("model", g.model).Msg("OpenAI API error")
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("openai returned no text content")
	}
	return out, nil
}
