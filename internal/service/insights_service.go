package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/langfuse"
	"github.com/blaisecz/wellness-tracker/internal/llm"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7

	insightsTraceName = "wellness-insights"
	feedbackScoreName = "user_rating"
)

// InsightsService generates LLM reflections over a user's derived summaries.
type InsightsService interface {
	// Generate creates a wellness reflection for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	// SubmitFeedback records a user's rating of an earlier reflection.
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

type insightsService struct {
	wellness WellnessService
	llm      llm.InsightsLLM
	langfuse langfuse.Client
	metrics  *metrics.Metrics
}

// NewInsightsService creates a new InsightsService. A nil llmClient makes
// Generate report llm.ErrOpenAIUnavailable.
func NewInsightsService(
	wellness WellnessService,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	m *metrics.Metrics,
) InsightsService {
	return &insightsService{
		wellness: wellness,
		llm:      llmClient,
		langfuse: langfuseClient,
		metrics:  m,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("wellness-tracker-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	snapshot, windows, err := s.wellness.Overview(ctx, userID, RecentWindowDays, HistoryWindowDays)
	if err != nil {
		return nil, err
	}
	week, month := windows[0], windows[1]

	insightsCtx := &domain.InsightsContext{
		Snapshot: *snapshot,
		Week:     week.Series(),
		Month:    month.Series(),
	}
	setObservation(span, "langfuse.observation.input", insightsCtx)

	if s.llm == nil {
		s.metrics.InsightsGenerated("unavailable")
		return nil, llm.ErrOpenAIUnavailable
	}

	reflection, err := s.llm.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "llm generation failed")
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			s.metrics.InsightsGenerated("unavailable")
		} else {
			s.metrics.InsightsGenerated("error")
		}
		return nil, err
	}
	s.metrics.InsightsGenerated("ok")
	setObservation(span, "langfuse.observation.output", reflection)

	response := &domain.InsightsResponse{
		Snapshot: *snapshot,
		Week:     week,
		Month:    month,
		Insights: *reflection,
	}
	response.TraceID = s.recordTrace(ctx, span, userID, insightsCtx, reflection)

	return response, nil
}

// recordTrace names the Langfuse trace and ties it to the user. The OTEL
// trace ID is reused when one exists so spans and scores land on one trace.
func (s *insightsService) recordTrace(ctx context.Context, span trace.Span, userID uuid.UUID, in *domain.InsightsContext, out *domain.LLMReflectionOutput) string {
	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		return traceID
	}

	id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: userID.String(),
		Name:   insightsTraceName,
		Input:  in,
		Output: out,
		Tags:   []string{"wellness-tracker"},
	})
	if err != nil {
		logging.FromContext(ctx).Warn("langfuse trace not recorded", "error", err)
		return traceID
	}
	return id
}

func (s *insightsService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if req == nil || req.TraceID == "" {
		return fmt.Errorf("%w: trace_id is required", domain.ErrInvalidInput)
	}
	if req.Score < 1 || req.Score > 5 {
		return fmt.Errorf("%w: score must be between 1 and 5", domain.ErrInvalidInput)
	}

	logger := logging.FromContext(ctx).With("user_id", userID, "trace_id", req.TraceID)

	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		logger.Info("feedback accepted without langfuse", "score", req.Score)
		return nil
	}

	// Scoring is best effort; a lost score never fails the request.
	if err := s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		logger.Warn("feedback score not recorded", "error", err)
		return nil
	}

	logger.Info("feedback recorded", "score", req.Score)
	return nil
}
