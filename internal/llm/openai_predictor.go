// Package llm provides a sleep model backed by an OpenAI chat model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/better-rest/internal/domain"
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

const defaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are a sleep regression model.

You receive three numeric features for one person:
- "wake": desired wake-up time in seconds since midnight,
- "estimated_sleep": how many hours of sleep they want,
- "coffee": how many cups of coffee they drink per day.

Estimate how many seconds of sleep they actually need so that they wake up
rested at the given time. Caffeine lowers sleep efficiency, so more coffee
means more time in bed.

You must respond as strict JSON with exactly this shape:

{"actual_sleep_seconds": <number>}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Features:

%s

Respond in the required JSON format.`

// OpenAIPredictor implements predictor.Predictor using the OpenAI API.
type OpenAIPredictor struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIPredictor creates a chat-backed sleep model.
// Returns nil if apiKey is empty.
func NewOpenAIPredictor(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIPredictor {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = defaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAIPredictor{
		client:       openai.NewClient(opts...),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Predict asks the chat model for the actual sleep duration.
func (p *OpenAIPredictor) Predict(ctx context.Context, f domain.Features) (domain.Prediction, error) {
	if p == nil {
		return domain.Prediction{}, ErrOpenAIUnavailable
	}

	featuresJSON, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: failed to serialize features: %v", ErrOpenAIRequest, err)
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(featuresJSON))),
		},
	})
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return domain.Prediction{}, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parsePrediction(resp.Choices[0].Message.Content)
}

type predictionOutput struct {
	ActualSleepSeconds *float64 `json:"actual_sleep_seconds"`
}

// parsePrediction decodes the model reply, tolerating a fenced code block.
func parsePrediction(content string) (domain.Prediction, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out predictionOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if out.ActualSleepSeconds == nil {
		return domain.Prediction{}, fmt.Errorf("%w: missing actual_sleep_seconds", ErrOpenAIResponse)
	}

	return domain.Prediction{ActualSleep: *out.ActualSleepSeconds}, nil
}
