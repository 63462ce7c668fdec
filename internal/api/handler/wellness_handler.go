package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/wellness-tracker/internal/analytics"
	"github.com/blaisecz/wellness-tracker/internal/api/validation"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/llm"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/pkg/httputil"
	"github.com/blaisecz/wellness-tracker/pkg/problem"
)

// WellnessHandler serves the derived summaries and LLM reflections.
type WellnessHandler struct {
	wellnessService service.WellnessService
	insightsService service.InsightsService
}

func NewWellnessHandler(wellnessService service.WellnessService, insightsService service.InsightsService) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
		insightsService: insightsService,
	}
}

// GetSummary handles GET /v1/users/{userId}/wellness/summary
// @Summary Get wellness summary
// @Description Summarize the user's most recent check-ins: dominant and recent mood, mood distribution, calm percentage and average energy and stress. A user without check-ins gets the neutral, zero-valued summary.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Number of most recent check-ins to summarize (defaults to SNAPSHOT_DEFAULT_LIMIT)" minimum(1) maximum(365)
// @Success 200 {object} domain.WellnessSnapshot "Wellness summary"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/summary [get]
func (h *WellnessHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	limit, fieldErr := parseIntParam(r, "limit", 0, 1, service.MaxSnapshotLimit)
	if fieldErr != nil {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{*fieldErr}).Write(w)
		return
	}

	snapshot, err := h.wellnessService.Snapshot(r.Context(), userID, limit)
	if err != nil {
		h.writeError(w, r, err, "Failed to compute wellness summary")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, snapshot)
}

// GetTrends handles GET /v1/users/{userId}/wellness/trends
// @Summary Get wellness trends
// @Description Bucket the check-ins of a trailing window by UTC calendar day. Days without check-ins are omitted from daily_buckets.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Trailing window in days" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.TrendSummary "Daily buckets"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/trends [get]
func (h *WellnessHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	windowDays, fieldErr := parseIntParam(r, "window_days", analytics.DefaultTrendWindowDays, 1, service.MaxTrendWindowDays)
	if fieldErr != nil {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{*fieldErr}).Write(w)
		return
	}

	trends, err := h.wellnessService.Trends(r.Context(), userID, windowDays)
	if err != nil {
		h.writeError(w, r, err, "Failed to compute wellness trends")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, trends)
}

// GetInsights handles GET /v1/users/{userId}/wellness/insights
// @Summary Get LLM-powered wellness reflection
// @Description Generate a non-clinical reflection from the summary and the 7- and 30-day trends.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Summary, trends and reflection"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/wellness/insights [get]
func (h *WellnessHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("Failed to generate a reflection from the LLM").Write(w)
		default:
			h.writeError(w, r, err, "Failed to generate insights")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// PostFeedback handles POST /v1/users/{userId}/wellness/insights/feedback
// @Summary Submit feedback on a reflection
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags wellness
// @Accept json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.InsightsFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Field validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/insights/feedback [post]
func (h *WellnessHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.InsightsFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		problem.BadRequest("Invalid JSON body: " + err.Error()).Write(w)
		return
	}

	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.insightsService.SubmitFeedback(r.Context(), userID, &req); err != nil {
		h.writeError(w, r, err, "Failed to submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WellnessHandler) writeError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		internalError(w, r, detail, err)
	}
}
