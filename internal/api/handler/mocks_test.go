package handler

import (
	"context"
	"net/http"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.CheckIn, bool, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) (*domain.CheckInListResponse, error)
}

func (m *MockCheckInService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.CheckIn, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.CheckIn{
		ID:     uuid.New(),
		UserID: userID,
		Mood:   domain.NormalizeMood(req.Mood),
		Energy: req.Energy,
		Stress: req.Stress,
	}, false, nil
}

func (m *MockCheckInService) List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) (*domain.CheckInListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.CheckInListResponse{
		Data:       []domain.CheckInResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockWellnessService is a mock implementation of WellnessService
type MockWellnessService struct {
	snapshotFunc func(ctx context.Context, userID uuid.UUID, limit int) (*domain.WellnessSnapshot, error)
	trendsFunc   func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendSummary, error)
}

func (m *MockWellnessService) Overview(ctx context.Context, userID uuid.UUID, windowDays ...int) (*domain.WellnessSnapshot, []domain.TrendSummary, error) {
	snapshot, err := m.Snapshot(ctx, userID, 0)
	if err != nil {
		return nil, nil, err
	}
	trends := make([]domain.TrendSummary, 0, len(windowDays))
	for _, days := range windowDays {
		summary, err := m.Trends(ctx, userID, days)
		if err != nil {
			return nil, nil, err
		}
		trends = append(trends, *summary)
	}
	return snapshot, trends, nil
}

func (m *MockWellnessService) Snapshot(ctx context.Context, userID uuid.UUID, limit int) (*domain.WellnessSnapshot, error) {
	if m.snapshotFunc != nil {
		return m.snapshotFunc(ctx, userID, limit)
	}
	return &domain.WellnessSnapshot{
		DominantMood:     domain.NeutralMood,
		RecentMood:       domain.NeutralMood,
		MoodDistribution: map[string]int{},
	}, nil
}

func (m *MockWellnessService) Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.TrendSummary, error) {
	if m.trendsFunc != nil {
		return m.trendsFunc(ctx, userID, windowDays)
	}
	return &domain.TrendSummary{
		DailyBuckets: map[string]domain.DailyBucket{},
		WindowDays:   windowDays,
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{}, nil
}

func (m *MockInsightsService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// withUserID attaches the chi URL param the handlers read.
func withUserID(req *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
