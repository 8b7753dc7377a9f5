package domain

import "time"

const (
	// DefaultSleepHours and DefaultCoffeeCups seed a fresh form.
	DefaultSleepHours = 8.0
	DefaultCoffeeCups = 1

	// Stepper limits of the input form. The estimator itself does not enforce them.
	MinSleepHours  = 4.0
	MaxSleepHours  = 12.0
	SleepHoursStep = 0.25
	MinCoffeeCups  = 1
	MaxCoffeeCups  = 20

	// DefaultBedtimeDisplay is shown before the first computation completes.
	DefaultBedtimeDisplay = "11:00 PM"
	// EstimationFailedMessage replaces the bedtime whenever estimation fails.
	EstimationFailedMessage = "Sorry, there was a problem calculating your bedtime."
)

// Features are the numeric inputs of the sleep model.
type Features struct {
	// Wake time in seconds since midnight
	Wake float64 `json:"wake"`
	// Desired sleep in hours
	EstimatedSleep float64 `json:"estimated_sleep"`
	// Daily coffee intake in cups
	Coffee float64 `json:"coffee"`
}

// Prediction is the sleep model output.
type Prediction struct {
	// Actual sleep needed, in seconds
	ActualSleep float64 `json:"actual_sleep"`
}

// Bedtime is a successful estimation.
type Bedtime struct {
	Wake                  Clock
	Features              Features
	PredictedSleepSeconds float64
	// At is the bedtime on the reference calendar of the wake time.
	At          time.Time
	Clock       Clock
	PreviousDay bool
	Formatted   string
}

// EstimateRequest is the request body for a one-shot estimate.
// @Description Inputs for a bedtime estimate.
type EstimateRequest struct {
	// Desired wake-up time (24h HH:MM)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Desired sleep in hours, 4 to 12 in quarter-hour steps
	SleepHours float64 `json:"sleep_hours" validate:"required,min=4,max=12,quarter" example:"8" minimum:"4" maximum:"12"`
	// Daily coffee intake in cups
	CoffeeCups int `json:"coffee_cups" validate:"required,min=1,max=20" example:"1" minimum:"1" maximum:"20"`
}

// EstimateResponse is the response body for a bedtime estimate.
// @Description Computed bedtime or the fixed failure message.
type EstimateResponse struct {
	// Bedtime as a short time of day, or the failure message
	Bedtime string `json:"bedtime" example:"10:14 PM"`
	// False when estimation failed and bedtime holds the failure message
	Estimated bool `json:"estimated" example:"true"`
	// Bedtime in 24h HH:MM
	BedtimeClock string `json:"bedtime_clock,omitempty" example:"22:14"`
	// True when the bedtime falls on the day before the wake time
	PreviousDay bool `json:"previous_day,omitempty" example:"true"`
	// Wake feature sent to the model
	WakeSeconds int `json:"wake_seconds,omitempty" example:"25200"`
	// Sleep duration returned by the model
	PredictedSleepSeconds float64 `json:"predicted_sleep_seconds,omitempty" example:"31560"`
	// Trace ID for feedback (only when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// NewEstimateResponse builds a response from an estimation outcome.
func NewEstimateResponse(b *Bedtime, err error) EstimateResponse {
	if err != nil || b == nil {
		return EstimateResponse{Bedtime: EstimationFailedMessage}
	}
	return EstimateResponse{
		Bedtime:               b.Formatted,
		Estimated:             true,
		BedtimeClock:          b.Clock.String(),
		PreviousDay:           b.PreviousDay,
		WakeSeconds:           b.Wake.SecondsSinceMidnight(),
		PredictedSleepSeconds: b.PredictedSleepSeconds,
	}
}

// FeedbackRequest is the request body for rating an estimate.
// @Description Rating for a previous estimate.
type FeedbackRequest struct {
	// Trace ID from the estimate response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"Spot on"`
}
