package domain

// LLMReflectionOutput contains the structured output from the LLM.
// @Description LLM-generated wellness reflection.
type LLMReflectionOutput struct {
	// Summary of the recent emotional pattern (2-3 sentences)
	Summary string `json:"summary" example:"You have mostly felt calm this week..."`
	// Observations about mood, energy and stress patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Calm check-ins cluster in the mornings\"]"`
	// Gentle, non-clinical suggestions (3-5 items)
	Suggestions []string `json:"suggestions" example:"[\"Keep the short evening walk you logged on calmer days\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM reflection generation.
type InsightsContext struct {
	Snapshot WellnessSnapshot `json:"snapshot"`
	// Last 7 days, one bucket per day including empty days
	Week []DailyBucket `json:"week"`
	// Last 30 days, one bucket per day including empty days
	Month []DailyBucket `json:"month"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Wellness summary, trends and LLM reflection.
type InsightsResponse struct {
	Snapshot WellnessSnapshot    `json:"snapshot"`
	Week     TrendSummary        `json:"week"`
	Month    TrendSummary        `json:"month"`
	Insights LLMReflectionOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// InsightsFeedbackRequest rates a previous insights response.
// @Description Request body for submitting feedback on a reflection.
type InsightsFeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required,max=128" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"This felt accurate."`
}
