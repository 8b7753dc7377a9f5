package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/predictor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// Layout12h and Layout24h are the short time-of-day layouts for bedtimes.
	Layout12h = "3:04 PM"
	Layout24h = "15:04"
)

// referenceDay anchors the wake time on a calendar so that subtracting the
// predicted sleep can roll back into the previous day.
var referenceDay = time.Date(2001, time.January, 2, 0, 0, 0, 0, time.UTC)

// BedtimeService estimates the ideal bedtime for a wake time, sleep goal and coffee intake.
type BedtimeService interface {
	// Compute runs one estimation and returns domain.ErrEstimation (wrapped) on any failure.
	Compute(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error)
	// Estimate is Compute rendered for display: the formatted bedtime or the fixed failure message.
	Estimate(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) string
}

type bedtimeService struct {
	models predictor.Provider
	layout string
}

// NewBedtimeService creates a BedtimeService. An empty layout means Layout12h.
func NewBedtimeService(models predictor.Provider, layout string) BedtimeService {
	if layout == "" {
		layout = Layout12h
	}
	return &bedtimeService{
		models: models,
		layout: layout,
	}
}

// LayoutFor maps a TIME_FORMAT setting to a time layout.
func LayoutFor(format string) string {
	if format == "24h" {
		return Layout24h
	}
	return Layout12h
}

func (s *bedtimeService) Compute(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error) {
	tracer := otel.Tracer("better-rest/bedtime")
	ctx, span := tracer.Start(ctx, "bedtime.estimate")
	defer span.End()

	if !wake.Valid() {
		err := fmt.Errorf("%w: invalid wake time %v", domain.ErrEstimation, wake)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid wake time")
		return nil, err
	}

	features := domain.Features{
		Wake:           float64(wake.SecondsSinceMidnight()),
		EstimatedSleep: sleepHours,
		Coffee:         float64(coffeeCups),
	}
	span.SetAttributes(
		attribute.Float64("bedtime.wake_seconds", features.Wake),
		attribute.Float64("bedtime.estimated_sleep", features.EstimatedSleep),
		attribute.Float64("bedtime.coffee", features.Coffee),
	)

	prediction, err := s.predict(ctx, features)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prediction failed")
		return nil, err
	}
	span.SetAttributes(attribute.Float64("bedtime.actual_sleep", prediction.ActualSleep))

	wakeAt := referenceDay.Add(time.Duration(wake.SecondsSinceMidnight()) * time.Second)
	bedAt := wakeAt.Add(-time.Duration(prediction.ActualSleep * float64(time.Second)))

	return &domain.Bedtime{
		Wake:                  wake,
		Features:              features,
		PredictedSleepSeconds: prediction.ActualSleep,
		At:                    bedAt,
		Clock:                 domain.Clock{Hour: bedAt.Hour(), Minute: bedAt.Minute()},
		PreviousDay:           bedAt.Before(referenceDay),
		Formatted:             bedAt.Format(s.layout),
	}, nil
}

func (s *bedtimeService) Estimate(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) string {
	bedtime, err := s.Compute(ctx, wake, sleepHours, coffeeCups)
	if err != nil {
		log.Printf("[bedtime] estimation failed wake=%s sleep=%.2f coffee=%d: %v", wake, sleepHours, coffeeCups, err)
		return domain.EstimationFailedMessage
	}
	return bedtime.Formatted
}

// predict builds the model and runs it once. Panics inside the model are
// reported as estimation errors.
func (s *bedtimeService) predict(ctx context.Context, features domain.Features) (prediction domain.Prediction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: model panicked: %v", domain.ErrEstimation, r)
		}
	}()

	if s.models == nil {
		return domain.Prediction{}, fmt.Errorf("%w: no sleep model configured", domain.ErrEstimation)
	}

	model, err := s.models.Predictor(ctx)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", domain.ErrEstimation, err)
	}
	if model == nil {
		return domain.Prediction{}, fmt.Errorf("%w: sleep model unavailable", domain.ErrEstimation)
	}

	prediction, err = model.Predict(ctx, features)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", domain.ErrEstimation, err)
	}

	if math.IsNaN(prediction.ActualSleep) || math.IsInf(prediction.ActualSleep, 0) ||
		prediction.ActualSleep < 0 || prediction.ActualSleep > maxPredictedSleepSeconds {
		return domain.Prediction{}, fmt.Errorf("%w: implausible prediction %v", domain.ErrEstimation, prediction.ActualSleep)
	}

	return prediction, nil
}

// maxPredictedSleepSeconds bounds model output to a week.
const maxPredictedSleepSeconds = 7 * 24 * 60 * 60
