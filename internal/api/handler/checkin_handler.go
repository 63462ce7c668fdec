package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/api/validation"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/pkg/httputil"
	"github.com/blaisecz/wellness-tracker/pkg/pagination"
	"github.com/blaisecz/wellness-tracker/pkg/problem"
)

type CheckInHandler struct {
	service service.CheckInService
}

func NewCheckInHandler(service service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// Create handles POST /v1/users/{userId}/check-ins
// @Summary Record a check-in
// @Description Append a wellness check-in stamped with the server time. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags check-ins
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateCheckInRequest true "Check-in data"
// @Success 201 {object} domain.CheckInResponse "New check-in recorded"
// @Success 200 {object} domain.CheckInResponse "Existing check-in returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Malformed body or unknown fields"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "client_request_id already in use"
// @Failure 422 {object} problem.Problem "Field validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins [post]
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreateCheckInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		problem.BadRequest("Invalid JSON body: " + err.Error()).Write(w)
		return
	}

	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	checkIn, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.ValidationError(err.Error(), nil).Write(w)
		case errors.Is(err, domain.ErrConflict):
			problem.Conflict("client_request_id is already in use").Write(w)
		default:
			internalError(w, r, "Failed to record check-in", err)
		}
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK
		logging.WithUser(r.Context(), userID.String()).Info("idempotent check-in replayed", "check_in_id", checkIn.ID)
	}
	httputil.WriteJSON(w, status, checkIn.ToResponse())
}

// List handles GET /v1/users/{userId}/check-ins
// @Summary List check-ins
// @Description Fetch paginated check-in history, newest first. Filter by time range.
// @Tags check-ins
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of time range (RFC3339)" format(date-time) example(2025-01-01T00:00:00Z)
// @Param to query string false "End of time range (RFC3339)" format(date-time) example(2025-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CheckInListResponse "Check-ins with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins [get]
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid cursor").Write(w)
		default:
			internalError(w, r, "Failed to list check-ins", err)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.CheckInFilter, []problem.FieldError) {
	var filter domain.CheckInFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := query.Get(bound.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   bound.name,
				Message: "must be a valid RFC3339 timestamp",
			})
			continue
		}
		utc := parsed.UTC()
		*bound.dst = &utc
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	limit, fieldErr := parseIntParam(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	filter.Limit = limit
	filter.Cursor = query.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
