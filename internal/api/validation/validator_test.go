package validation

import (
	"testing"

	"github.com/blaisecz/better-rest/internal/domain"
)

func TestValidate_EstimateRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.EstimateRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "valid defaults",
			req:  domain.EstimateRequest{WakeTime: "07:00", SleepHours: 8, CoffeeCups: 1},
		},
		{
			name: "lower bounds",
			req:  domain.EstimateRequest{WakeTime: "00:00", SleepHours: 4, CoffeeCups: 1},
		},
		{
			name: "upper bounds",
			req:  domain.EstimateRequest{WakeTime: "23:59", SleepHours: 12, CoffeeCups: 20},
		},
		{
			name:      "missing wake time",
			req:       domain.EstimateRequest{SleepHours: 8, CoffeeCups: 1},
			wantField: "wake_time",
			wantMsg:   "is required",
		},
		{
			name:      "bad wake time",
			req:       domain.EstimateRequest{WakeTime: "25:00", SleepHours: 8, CoffeeCups: 1},
			wantField: "wake_time",
			wantMsg:   "must be a time of day in HH:MM format",
		},
		{
			name:      "sleep below range",
			req:       domain.EstimateRequest{WakeTime: "07:00", SleepHours: 3.75, CoffeeCups: 1},
			wantField: "sleep_hours",
			wantMsg:   "must be at least 4",
		},
		{
			name:      "sleep off step",
			req:       domain.EstimateRequest{WakeTime: "07:00", SleepHours: 8.1, CoffeeCups: 1},
			wantField: "sleep_hours",
			wantMsg:   "must be a multiple of 0.25",
		},
		{
			name:      "too much coffee",
			req:       domain.EstimateRequest{WakeTime: "07:00", SleepHours: 8, CoffeeCups: 21},
			wantField: "coffee_cups",
			wantMsg:   "must be at most 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("expected no errors, got %+v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %+v", errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Message != tt.wantMsg {
				t.Errorf("got %+v, want %s %q", errs[0], tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestValidate_UpdateFormRequest(t *testing.T) {
	wake := "6:5"
	hours := 12.5
	cups := 0

	if errs := Validate(domain.UpdateFormRequest{}); errs != nil {
		t.Fatalf("empty update should be valid, got %+v", errs)
	}

	errs := Validate(domain.UpdateFormRequest{WakeTime: &wake, SleepHours: &hours, CoffeeCups: &cups})
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"wake_time", "sleep_hours", "coffee_cups"} {
		if !fields[f] {
			t.Errorf("expected error for %s, got %+v", f, errs)
		}
	}
}

func TestValidate_FeedbackRequest(t *testing.T) {
	if errs := Validate(domain.FeedbackRequest{TraceID: "t", Score: 5}); errs != nil {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	errs := Validate(domain.FeedbackRequest{TraceID: "t", Score: 6})
	if len(errs) != 1 || errs[0].Field != "score" {
		t.Fatalf("expected score error, got %+v", errs)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"WakeTime":   "wake_time",
		"SleepHours": "sleep_hours",
		"TraceID":    "trace_i_d",
		"score":      "score",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
