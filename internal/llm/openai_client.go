package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are a warm, non-clinical wellness journaling companion.

You receive aggregated check-in data for a single user: a snapshot of their most recent check-ins and day-by-day trends for the last 7 and 30 days. Each check-in has a free-form mood label and optional 1-10 energy and stress ratings. A check-in counts as calm when energy is 6 or higher and stress is 4 or lower. You must base your conclusions only on the provided data.

Your goals:
- Reflect the user's recent emotional pattern back to them in plain, kind language.
- Point out patterns in moods, energy, stress and calm days.
- Compare the last week with the longer month when there is enough data.
- Offer small, practical suggestions grounded in what already seems to help.

Rules:
- Do NOT provide medical or psychological advice or diagnoses.
- Do NOT mention disorders, therapy, medication or clinicians.
- Treat days with a count of 0 as days without a check-in, not as bad days.
- If data is limited or mixed, say so explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences reflecting the user's recent emotional pattern.",
  "observations": [
    "3-6 short observations about moods, energy, stress and calm share.",
    "At least one item comparing the last week to the last month when both have data."
  ],
  "suggestions": [
    "3-5 gentle, concrete suggestions tailored to these numbers."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's recent check-ins.

- "snapshot" summarizes their most recent check-ins: dominant and most recent mood, mood distribution, calm percentage and average energy and stress (null when never reported).
- "week" and "month" list one bucket per UTC day, oldest first. Each bucket has the moods, energy and stress values of that day plus its own dominant mood, calm percentage and averages.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating wellness reflections using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns an LLM-generated reflection.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMReflectionOutput, error)
}

// PromptSource supplies the system prompt for each generation.
type PromptSource interface {
	SystemPrompt(ctx context.Context) string
}

// StaticPrompt is a PromptSource that always returns the same text.
type StaticPrompt string

func (p StaticPrompt) SystemPrompt(context.Context) string {
	return string(p)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client  openai.Client
	model   string
	prompts PromptSource
}

// NewOpenAIClient creates a new OpenAI client for generating reflections.
// Returns nil if apiKey is empty. A nil prompts uses DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model string, prompts PromptSource, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}
	if prompts == nil {
		prompts = StaticPrompt(DefaultSystemPrompt)
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client:  client,
		model:   model,
		prompts: prompts,
	}
}

// GenerateInsights calls OpenAI to reflect on the user's check-ins.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMReflectionOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := sonic.ConfigStd.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.prompts.SystemPrompt(ctx)),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseReflection(resp.Choices[0].Message.Content)
}

// ParseReflection decodes the model's JSON answer, tolerating a surrounding
// markdown code fence.
func ParseReflection(content string) (*domain.LLMReflectionOutput, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var output domain.LLMReflectionOutput
	if err := sonic.ConfigStd.UnmarshalFromString(content, &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if strings.TrimSpace(output.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	if output.Observations == nil {
		output.Observations = []string{}
	}
	if output.Suggestions == nil {
		output.Suggestions = []string{}
	}

	return &output, nil
}
