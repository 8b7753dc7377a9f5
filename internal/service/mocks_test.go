package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/pkg/pagination"
	"github.com/google/uuid"
)

// MockFormRepository is an in-memory implementation of FormRepository
type MockFormRepository struct {
	forms   map[uuid.UUID]*domain.BedtimeForm
	err     error
	updates int
}

func NewMockFormRepository() *MockFormRepository {
	return &MockFormRepository{
		forms: make(map[uuid.UUID]*domain.BedtimeForm),
	}
}

func (m *MockFormRepository) Create(ctx context.Context, form *domain.BedtimeForm) error {
	if m.err != nil {
		return m.err
	}
	if form.ID == uuid.Nil {
		form.ID = uuid.New()
	}
	now := time.Now()
	form.CreatedAt = now
	form.UpdatedAt = now
	stored := *form
	m.forms[form.ID] = &stored
	return nil
}

func (m *MockFormRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error) {
	if m.err != nil {
		return nil, m.err
	}
	form, ok := m.forms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *form
	return &copied, nil
}

func (m *MockFormRepository) Update(ctx context.Context, form *domain.BedtimeForm) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.forms[form.ID]; !ok {
		return domain.ErrNotFound
	}
	m.updates++
	form.UpdatedAt = time.Now()
	stored := *form
	m.forms[form.ID] = &stored
	return nil
}

func (m *MockFormRepository) List(ctx context.Context, filter domain.FormFilter) ([]domain.BedtimeForm, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.BedtimeForm
	for _, form := range m.forms {
		result = append(result, *form)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() > result[j].ID.String()
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

// MockBedtimeService returns canned results
type MockBedtimeService struct {
	computeFunc func(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error)
	calls       int
}

func (m *MockBedtimeService) Compute(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) (*domain.Bedtime, error) {
	m.calls++
	if m.computeFunc != nil {
		return m.computeFunc(ctx, wake, sleepHours, coffeeCups)
	}
	return &domain.Bedtime{Wake: wake, Formatted: "11:00 PM"}, nil
}

func (m *MockBedtimeService) Estimate(ctx context.Context, wake domain.Clock, sleepHours float64, coffeeCups int) string {
	b, err := m.Compute(ctx, wake, sleepHours, coffeeCups)
	if err != nil {
		return domain.EstimationFailedMessage
	}
	return b.Formatted
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
