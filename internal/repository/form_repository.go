package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(ctx context.Context, form *domain.BedtimeForm) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error)
	Update(ctx context.Context, form *domain.BedtimeForm) error
	List(ctx context.Context, filter domain.FormFilter) ([]domain.BedtimeForm, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(ctx context.Context, form *domain.BedtimeForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *formRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BedtimeForm, error) {
	var form domain.BedtimeForm
	err := r.db.WithContext(ctx).First(&form, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Update writes every column, zero values included (Estimated=false after a failure).
func (r *formRepository) Update(ctx context.Context, form *domain.BedtimeForm) error {
	result := r.db.WithContext(ctx).
		Model(form).
		Select("wake_time", "sleep_hours", "coffee_cups", "predicted_bedtime", "estimated", "updated_at").
		Updates(form)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *formRepository) List(ctx context.Context, filter domain.FormFilter) ([]domain.BedtimeForm, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var forms []domain.BedtimeForm
	if err := query.Find(&forms).Error; err != nil {
		return nil, err
	}

	return forms, nil
}
