// Package models selects and builds the sleep model configured by MODEL_BACKEND.
package models

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/langfuse"
	"github.com/blaisecz/better-rest/internal/llm"
	"github.com/blaisecz/better-rest/internal/predictor"
	"github.com/openai/openai-go/v3/option"
)

// NewProvider returns a cached provider for the configured backend.
// Builds are lazy, so a misconfigured model surfaces as an estimation failure
// on the first recalculation rather than at startup.
func NewProvider(cfg *config.Config, opts ...option.RequestOption) *predictor.CachedProvider {
	switch cfg.ModelBackend {
	case config.ModelBackendOpenAI:
		return predictor.NewCachedProvider(func(ctx context.Context) (predictor.Predictor, error) {
			return buildOpenAI(ctx, cfg, opts...)
		})
	default:
		return predictor.NewCachedProvider(func(ctx context.Context) (predictor.Predictor, error) {
			model, err := predictor.LoadLinearModel(cfg.ModelPath)
			if err != nil {
				return nil, err
			}
			log.Printf("[models] linear model %s loaded", model.Version)
			return model, nil
		})
	}
}

func buildOpenAI(ctx context.Context, cfg *config.Config, opts ...option.RequestOption) (predictor.Predictor, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", llm.ErrOpenAIUnavailable)
	}

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptConfig{
		Config:    LangfuseConfig(cfg),
		Name:      cfg.OpenAIPromptName,
		Label:     cfg.OpenAIPromptLabel,
		CachePath: cfg.OpenAIPromptPath,
	})
	if err != nil {
		if !errors.Is(err, langfuse.ErrNoPrompt) {
			return nil, err
		}
		prompt = llm.DefaultSystemPrompt
	}

	log.Printf("[models] openai model %s ready", cfg.OpenAIBedtimeModel)
	return llm.NewOpenAIPredictor(cfg.OpenAIAPIKey, cfg.OpenAIBedtimeModel, prompt, opts...), nil
}

// LangfuseConfig extracts the Langfuse settings from cfg.
func LangfuseConfig(cfg *config.Config) langfuse.Config {
	return langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
}
