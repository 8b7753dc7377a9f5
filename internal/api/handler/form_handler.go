package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/blaisecz/better-rest/internal/api/validation"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/pkg/pagination"
	"github.com/blaisecz/better-rest/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type FormHandler struct {
	service service.FormService
}

func NewFormHandler(service service.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// Create handles POST /v1/forms
// @Summary Create bedtime form
// @Description Start a form from the defaults (07:00, 8 hours, 1 cup), overridden by any provided inputs. The bedtime is computed immediately.
// @Tags forms
// @Accept json
// @Produce json
// @Param request body domain.UpdateFormRequest false "Initial inputs"
// @Success 201 {object} domain.FormResponse "Form created"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /forms [post]
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	form, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create form").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(form.ToResponse())
}

// GetByID handles GET /v1/forms/{formId}
// @Summary Get bedtime form
// @Tags forms
// @Produce json
// @Param formId path string true "Form UUID" format(uuid)
// @Success 200 {object} domain.FormResponse
// @Failure 400 {object} problem.Problem "Invalid form ID"
// @Failure 404 {object} problem.Problem "Form not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /forms/{formId} [get]
func (h *FormHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "formId"))
	if err != nil {
		problem.BadRequest("Invalid form ID format").Write(w)
		return
	}

	form, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Form not found").Write(w)
			return
		}
		problem.InternalError("Failed to get form").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(form.ToResponse())
}

// Update handles PATCH /v1/forms/{formId}
// @Summary Update bedtime form
// @Description Change any subset of the inputs. The bedtime is recomputed from the current inputs.
// @Tags forms
// @Accept json
// @Produce json
// @Param formId path string true "Form UUID" format(uuid)
// @Param request body domain.UpdateFormRequest true "Changed inputs"
// @Success 200 {object} domain.FormResponse
// @Failure 400 {object} problem.Problem "Invalid form ID or JSON body"
// @Failure 404 {object} problem.Problem "Form not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /forms/{formId} [patch]
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "formId"))
	if err != nil {
		problem.BadRequest("Invalid form ID format").Write(w)
		return
	}

	var req domain.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	form, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Form not found").Write(w)
			return
		}
		problem.InternalError("Failed to update form").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(form.ToResponse())
}

// List handles GET /v1/forms
// @Summary List bedtime forms
// @Description Newest first, cursor paginated.
// @Tags forms
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.FormListResponse
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /forms [get]
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseFormFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list forms").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseFormFilter(r *http.Request) (domain.FormFilter, []problem.FieldError) {
	var filter domain.FormFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		if !pagination.IsValid(cursor) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is invalid",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
