// Package predictor wraps the pre-trained sleep regression model.
//
// The model is opaque to the rest of the service: it maps the wake time,
// the desired sleep and the coffee intake to the sleep actually needed.
package predictor

import (
	"context"
	"errors"
	"sync"

	"github.com/blaisecz/better-rest/internal/domain"
)

var (
	// ErrModelLoad indicates the model could not be constructed.
	ErrModelLoad = errors.New("sleep model could not be loaded")
	// ErrPrediction indicates the model failed while computing a prediction.
	ErrPrediction = errors.New("sleep model prediction failed")
)

// Predictor is a trained sleep model.
type Predictor interface {
	Predict(ctx context.Context, f domain.Features) (domain.Prediction, error)
}

// Func adapts a plain function to a Predictor.
type Func func(ctx context.Context, f domain.Features) (domain.Prediction, error)

func (fn Func) Predict(ctx context.Context, f domain.Features) (domain.Prediction, error) {
	return fn(ctx, f)
}

// Provider builds the model used by one recalculation.
type Provider interface {
	Predictor(ctx context.Context) (Predictor, error)
}

// ProviderFunc adapts a constructor to a Provider.
type ProviderFunc func(ctx context.Context) (Predictor, error)

func (fn ProviderFunc) Predictor(ctx context.Context) (Predictor, error) {
	return fn(ctx)
}

// Static always hands out the same model.
func Static(p Predictor) Provider {
	return ProviderFunc(func(context.Context) (Predictor, error) {
		return p, nil
	})
}

// CachedProvider keeps the first model that builds successfully.
// Failed builds are not cached, so the next recalculation tries again.
type CachedProvider struct {
	build ProviderFunc

	mu    sync.Mutex
	model Predictor
}

// NewCachedProvider wraps a model constructor.
func NewCachedProvider(build ProviderFunc) *CachedProvider {
	return &CachedProvider{build: build}
}

func (c *CachedProvider) Predictor(ctx context.Context) (Predictor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil {
		return c.model, nil
	}

	model, err := c.build(ctx)
	if err != nil {
		return nil, err
	}
	c.model = model
	return model, nil
}
