package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hirelens/hirelens/internal/models"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqExtractor runs the extraction contract against Groq, which
// exposes the OpenAI chat completion wire format. Sampling is pinned
// low (temperature/top-p 0.5, fixed seed, JSON mode) to bias toward
// deterministic structured output.
type GroqExtractor struct {
	client *openai.Client
	model  string
}

func NewGroqExtractor(apiKey, model string) (*GroqExtractor, error) {
	if apiKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if model == "" {
		model = "llama3-8b-8192"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqExtractor{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (g *GroqExtractor) Close() error { return nil }

func (g *GroqExtractor) Extract(ctx context.Context, prompt string) (*models.EntitySet, error) {
	seed := 0
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPromptNER},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.5,
		TopP:        0.5,
		MaxTokens:   1024,
		Seed:        &seed,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("groq returned no choices")
	}

	return decodeEntities(resp.Choices[0].Message.Content)
}
