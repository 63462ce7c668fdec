package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/analytics"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/repository"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultSnapshotLimit = 30
	MaxSnapshotLimit     = 365

	MaxTrendWindowDays = 365
)

// WellnessService derives summaries from a user's check-ins on every call.
// Nothing it computes is stored.
type WellnessService interface {
	// Snapshot summarizes the user's most recent limit check-ins. A zero
	// limit selects the configured default.
	Snapshot(ctx context.Context, userID uuid.UUID, limit int) (*domain.WellnessSnapshot, error)
	// Trends buckets the check-ins of the trailing windowDays by UTC day. A
	// zero window selects analytics.DefaultTrendWindowDays.
	Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendSummary, error)
	// Overview returns the default snapshot and one trend per window, all
	// ending at the same instant.
	Overview(ctx context.Context, userID uuid.UUID, windowDays ...int) (*domain.WellnessSnapshot, []domain.TrendSummary, error)
}

type wellnessService struct {
	checkInRepo  repository.CheckInRepository
	userRepo     repository.UserRepository
	defaultLimit int
	clock        Clock
}

func NewWellnessService(
	checkInRepo repository.CheckInRepository,
	userRepo repository.UserRepository,
	defaultLimit int,
	clock Clock,
) WellnessService {
	if defaultLimit < 1 || defaultLimit > MaxSnapshotLimit {
		defaultLimit = DefaultSnapshotLimit
	}
	return &wellnessService{
		checkInRepo:  checkInRepo,
		userRepo:     userRepo,
		defaultLimit: defaultLimit,
		clock:        clock,
	}
}

func (s *wellnessService) Snapshot(ctx context.Context, userID uuid.UUID, limit int) (*domain.WellnessSnapshot, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 1 || limit > MaxSnapshotLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, MaxSnapshotLimit)
	}

	tracer := otel.Tracer("wellness-tracker-api/wellness")
	ctx, span := tracer.Start(ctx, "WellnessService.Snapshot",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("snapshot.limit", limit),
		),
	)
	defer span.End()

	setObservation(span, "langfuse.observation.input", map[string]any{
		"user_id": userID.String(),
		"limit":   limit,
	})

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, userID, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("snapshot.total_entries", snapshot.TotalEntries))
	setObservation(span, "langfuse.observation.output", snapshot)

	return snapshot, nil
}

func (s *wellnessService) Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendSummary, error) {
	if windowDays == 0 {
		windowDays = analytics.DefaultTrendWindowDays
	}
	if err := checkWindow(windowDays); err != nil {
		return nil, err
	}

	now := s.clock.now()
	from, to := analytics.Window(windowDays, now)

	tracer := otel.Tracer("wellness-tracker-api/wellness")
	ctx, span := tracer.Start(ctx, "WellnessService.Trends",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
			attribute.String("window.from", from.Format(time.RFC3339)),
			attribute.String("window.to", to.Format(time.RFC3339)),
		),
	)
	defer span.End()

	setObservation(span, "langfuse.observation.input", map[string]any{
		"user_id":     userID.String(),
		"window_days": windowDays,
		"from":        from.Format(time.RFC3339),
		"to":          to.Format(time.RFC3339),
	})

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	summary, err := s.trends(ctx, userID, windowDays, now)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("trends.total_checkins", summary.TotalCheckins),
		attribute.Int("trends.active_days", len(summary.DailyBuckets)),
	)
	setObservation(span, "langfuse.observation.output", summary)

	return summary, nil
}

func (s *wellnessService) Overview(ctx context.Context, userID uuid.UUID, windowDays ...int) (*domain.WellnessSnapshot, []domain.TrendSummary, error) {
	for _, days := range windowDays {
		if err := checkWindow(days); err != nil {
			return nil, nil, err
		}
	}

	now := s.clock.now()

	tracer := otel.Tracer("wellness-tracker-api/wellness")
	ctx, span := tracer.Start(ctx, "WellnessService.Overview",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.IntSlice("window.days", windowDays),
			attribute.String("window.to", now.Format(time.RFC3339)),
		),
	)
	defer span.End()

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, nil, err
	}

	snapshot, err := s.snapshot(ctx, userID, s.defaultLimit)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	trends := make([]domain.TrendSummary, 0, len(windowDays))
	for _, days := range windowDays {
		summary, err := s.trends(ctx, userID, days, now)
		if err != nil {
			span.RecordError(err)
			return nil, nil, err
		}
		trends = append(trends, *summary)
	}

	return snapshot, trends, nil
}

func (s *wellnessService) snapshot(ctx context.Context, userID uuid.UUID, limit int) (*domain.WellnessSnapshot, error) {
	records, err := s.checkInRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent check-ins: %w", err)
	}
	snapshot := analytics.Snapshot(records)
	return &snapshot, nil
}

func (s *wellnessService) trends(ctx context.Context, userID uuid.UUID, windowDays int, now time.Time) (*domain.TrendSummary, error) {
	from, to := analytics.Window(windowDays, now)
	records, err := s.checkInRepo.ListByRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch check-ins in window: %w", err)
	}
	summary := analytics.Trends(records, windowDays, now)
	return &summary, nil
}

func checkWindow(windowDays int) error {
	if windowDays < 1 || windowDays > MaxTrendWindowDays {
		return fmt.Errorf("%w: window_days must be between 1 and %d", domain.ErrInvalidInput, MaxTrendWindowDays)
	}
	return nil
}

func (s *wellnessService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// setObservation attaches a JSON payload for Langfuse's OTEL ingestion.
func setObservation(span trace.Span, key string, payload any) {
	if !span.IsRecording() {
		return
	}
	if data, err := sonic.Marshal(payload); err == nil {
		span.SetAttributes(attribute.String(key, string(data)))
	}
}
