package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/langfuse"
	"github.com/google/uuid"
)

// MockBedtimeService is a mock implementation of BedtimeService
type MockBedtimeService struct {
	computeFunc func(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error)
}

func (m *MockBedtimeService) Compute(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, wake, sleepHours, coffeeCups)
	}
	return &domain.Bedtime{
		Wake:                  wake,
		PredictedSleepSeconds: 31560,
		Clock:                 domain.Clock{Hour: 22, Minute: 14},
		PreviousDay:           true,
		Formatted:             "10:14 PM",
	}, nil
}

func (m *MockBedtimeService) Estimate(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) string {
	b, err := m.Compute(ctx, wake, sleepHours, coffeeCups)
	if err != nil {
		return domain.EstimationFailedMessage
	}
	return b.Formatted
}

// MockFormService is a mock implementation of FormService
type MockFormService struct {
	createFunc func(ctx context.Context, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error)
	listFunc   func(ctx context.Context, filter domain.FormFilter) (*domain.FormListResponse, error)
}

func (m *MockFormService) Create(ctx context.Context, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	form := domain.NewBedtimeForm()
	form.ID = uuid.New()
	form.Apply(req)
	form.PredictedBedtime = "10:14 PM"
	form.Estimated = true
	form.CreatedAt = time.Now()
	form.UpdatedAt = form.CreatedAt
	return form, nil
}

func (m *MockFormService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	form := domain.NewBedtimeForm()
	form.ID = id
	return form, nil
}

func (m *MockFormService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	form := domain.NewBedtimeForm()
	form.ID = id
	form.Apply(req)
	return form, nil
}

func (m *MockFormService) List(ctx context.Context, filter domain.FormFilter) (*domain.FormListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.FormListResponse{
		Data:       []domain.FormResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockLangfuseClient records traces and scores in memory
type MockLangfuseClient struct {
	enabled  bool
	scoreErr error
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return fmt.Sprintf("trace-%d", len(m.traces)), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.scoreErr != nil {
		return m.scoreErr
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Close() {}
