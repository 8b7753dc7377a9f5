package domain

import (
	"time"

	"github.com/google/uuid"
)

// BedtimeForm holds the three inputs of a bedtime form and the output computed from them.
type BedtimeForm struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	WakeTime   string    `gorm:"type:varchar(5);not null;default:'07:00'" json:"wake_time"`
	SleepHours float64   `gorm:"not null;default:8" json:"sleep_hours"`
	CoffeeCups int       `gorm:"type:smallint;not null;default:1" json:"coffee_cups"`
	// PredictedBedtime is the latest estimator output, possibly the failure message.
	PredictedBedtime string    `gorm:"type:varchar(128);not null;default:''" json:"predicted_bedtime"`
	Estimated        bool      `gorm:"not null;default:false" json:"estimated"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index:idx_bedtime_forms_created,sort:desc" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BedtimeForm) TableName() string {
	return "bedtime_forms"
}

// NewBedtimeForm returns a form with default inputs and no computed output.
func NewBedtimeForm() *BedtimeForm {
	return &BedtimeForm{
		WakeTime:   DefaultWakeTime.String(),
		SleepHours: DefaultSleepHours,
		CoffeeCups: DefaultCoffeeCups,
	}
}

// Wake returns the parsed wake time, falling back to the default for corrupt rows.
func (f *BedtimeForm) Wake() Clock {
	c, err := ParseClock(f.WakeTime)
	if err != nil {
		return DefaultWakeTime
	}
	return c
}

// Display is what the read-only output field shows.
func (f *BedtimeForm) Display() string {
	if f.PredictedBedtime == "" {
		return DefaultBedtimeDisplay
	}
	return f.PredictedBedtime
}

// Apply copies every non-nil field of req onto the form.
// It reports whether any input changed.
func (f *BedtimeForm) Apply(req *UpdateFormRequest) bool {
	if req == nil {
		return false
	}
	changed := false
	if req.WakeTime != nil && *req.WakeTime != f.WakeTime {
		f.WakeTime = *req.WakeTime
		changed = true
	}
	if req.SleepHours != nil && *req.SleepHours != f.SleepHours {
		f.SleepHours = *req.SleepHours
		changed = true
	}
	if req.CoffeeCups != nil && *req.CoffeeCups != f.CoffeeCups {
		f.CoffeeCups = *req.CoffeeCups
		changed = true
	}
	return changed
}

// UpdateFormRequest changes any subset of a form's inputs.
// @Description Partial update of bedtime form inputs. Omitted fields keep their value.
type UpdateFormRequest struct {
	// Desired wake-up time (24h HH:MM)
	WakeTime *string `json:"wake_time,omitempty" validate:"omitempty,clock" example:"06:30"`
	// Desired sleep in hours, 4 to 12 in quarter-hour steps
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=4,max=12,quarter" example:"7.5"`
	// Daily coffee intake in cups
	CoffeeCups *int `json:"coffee_cups,omitempty" validate:"omitempty,min=1,max=20" example:"2"`
}

// FormResponse is the response body for form endpoints.
// @Description Bedtime form with its current inputs and output.
type FormResponse struct {
	ID         uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	WakeTime   string    `json:"wake_time" example:"07:00"`
	SleepHours float64   `json:"sleep_hours" example:"8"`
	CoffeeCups int       `json:"coffee_cups" example:"1"`
	// Output field: bedtime, the failure message, or the default display
	Bedtime   string    `json:"bedtime" example:"10:14 PM"`
	Estimated bool      `json:"estimated" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

func (f *BedtimeForm) ToResponse() FormResponse {
	return FormResponse{
		ID:         f.ID,
		WakeTime:   f.WakeTime,
		SleepHours: f.SleepHours,
		CoffeeCups: f.CoffeeCups,
		Bedtime:    f.Display(),
		Estimated:  f.Estimated,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

// FormListResponse is the response body for listing forms.
// @Description Paginated list of bedtime forms.
type FormListResponse struct {
	Data       []FormResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// FormFilter contains list parameters for forms.
type FormFilter struct {
	Limit  int
	Cursor string
}
