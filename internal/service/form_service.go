package service

import (
	"context"
	"log"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/repository"
	"github.com/blaisecz/better-rest/pkg/pagination"
	"github.com/google/uuid"
)

// FormService keeps bedtime forms whose output is recomputed on every input change.
type FormService interface {
	// Create starts a form from the defaults, overridden by any fields in req, and computes it once.
	Create(ctx context.Context, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error)
	// Update applies the changed inputs and recomputes the bedtime.
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error)
	List(ctx context.Context, filter domain.FormFilter) (*domain.FormListResponse, error)
}

type formService struct {
	repo    repository.FormRepository
	bedtime BedtimeService
}

func NewFormService(repo repository.FormRepository, bedtime BedtimeService) FormService {
	return &formService{
		repo:    repo,
		bedtime: bedtime,
	}
}

func (s *formService) Create(ctx context.Context, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error) {
	form := domain.NewBedtimeForm()
	form.ID = uuid.New()
	form.Apply(req)

	if err := s.recompute(ctx, form); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

func (s *formService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *formService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateFormRequest) (*domain.BedtimeForm, error) {
	form, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Apply(req)

	// Recompute even when nothing changed: the model may have recovered since the last failure.
	if err := s.recompute(ctx, form); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

func (s *formService) List(ctx context.Context, filter domain.FormFilter) (*domain.FormListResponse, error) {
	forms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(forms) > limit

	// Trim to actual limit
	if hasMore {
		forms = forms[:limit]
	}

	response := &domain.FormListResponse{
		Data: make([]domain.FormResponse, len(forms)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, form := range forms {
		response.Data[i] = form.ToResponse()
	}

	if hasMore && len(forms) > 0 {
		last := forms[len(forms)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// recompute replaces the form output with the estimator result for the current inputs.
// An estimation failure is not an error here: the form shows the failure message instead.
func (s *formService) recompute(ctx context.Context, form *domain.BedtimeForm) error {
	wake, err := domain.ParseClock(form.WakeTime)
	if err != nil {
		return err
	}

	bedtime, err := s.bedtime.Compute(ctx, wake, form.SleepHours, form.CoffeeCups)
	if err != nil {
		log.Printf("[forms] form %s: %v", form.ID, err)
		form.PredictedBedtime = domain.EstimationFailedMessage
		form.Estimated = false
		return nil
	}

	form.PredictedBedtime = bedtime.Formatted
	form.Estimated = true
	return nil
}
