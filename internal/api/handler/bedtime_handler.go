package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/blaisecz/better-rest/internal/api/validation"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/langfuse"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/pkg/problem"
)

type BedtimeHandler struct {
	service  service.BedtimeService
	langfuse langfuse.Client
}

func NewBedtimeHandler(service service.BedtimeService, langfuseClient langfuse.Client) *BedtimeHandler {
	return &BedtimeHandler{
		service:  service,
		langfuse: langfuseClient,
	}
}

// Estimate handles POST /v1/bedtime/estimate
// @Summary Estimate bedtime
// @Description Predict the ideal bedtime for a wake time, sleep goal and coffee intake. A failed estimation still returns 200 with estimated=false and the fixed failure message as bedtime.
// @Tags bedtime
// @Accept json
// @Produce json
// @Param request body domain.EstimateRequest true "Estimate inputs"
// @Success 200 {object} domain.EstimateResponse "Bedtime or failure message"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Router /bedtime/estimate [post]
func (h *BedtimeHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	wake, err := domain.ParseClock(req.WakeTime)
	if err != nil {
		problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
			{Field: "wake_time", Message: "must be a time of day in HH:MM format"},
		}).Write(w)
		return
	}

	bedtime, err := h.service.Compute(r.Context(), wake, req.SleepHours, req.CoffeeCups)
	if err != nil {
		log.Printf("[bedtime] estimation failed for wake=%s sleep=%.2f coffee=%d: %v", req.WakeTime, req.SleepHours, req.CoffeeCups, err)
	}
	response := domain.NewEstimateResponse(bedtime, err)

	if h.langfuse != nil && h.langfuse.IsEnabled() {
		traceID, traceErr := h.langfuse.CreateTrace(r.Context(), langfuse.TraceInput{
			Name:   "bedtime-estimate",
			Input:  req,
			Output: response,
			Tags:   []string{"bedtime"},
			Metadata: map[string]any{
				"estimated": response.Estimated,
			},
		})
		if traceErr != nil {
			log.Printf("[langfuse] failed to create trace: %v", traceErr)
		}
		response.TraceID = traceID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Feedback handles POST /v1/bedtime/feedback
// @Summary Rate an estimate
// @Description Attach a 1-5 user rating to the Langfuse trace of a previous estimate.
// @Tags bedtime
// @Accept json
// @Param request body domain.FeedbackRequest true "Rating"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 503 {object} problem.Problem "Feedback tracking is not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /bedtime/feedback [post]
func (h *BedtimeHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if h.langfuse == nil || !h.langfuse.IsEnabled() {
		problem.ServiceUnavailable("Feedback tracking is not configured").Write(w)
		return
	}

	err := h.langfuse.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		log.Printf("[langfuse] failed to create score: %v", err)
		problem.InternalError("Failed to record feedback").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
