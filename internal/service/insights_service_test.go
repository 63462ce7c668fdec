package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsightsFixture(t *testing.T, now time.Time) (uuid.UUID, WellnessService) {
	t.Helper()
	userRepo := NewMockUserRepository()
	userID := userRepo.addUser()
	repo := NewMockCheckInRepository()
	repo.add(
		checkInAt(userID, now.Add(-2*time.Hour), "calm", intPtr(8), intPtr(2)),
		checkInAt(userID, now.AddDate(0, 0, -3), "tired", intPtr(3), intPtr(6)),
		checkInAt(userID, now.AddDate(0, 0, -20), "anxious", nil, intPtr(9)),
	)
	return userID, NewWellnessService(repo, userRepo, 30, fixedClock(now))
}

func TestInsightsService_Generate(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	userID, wellness := newInsightsFixture(t, now)

	model := &mockLLM{out: &domain.LLMReflectionOutput{
		Summary:      "A calmer end to the week.",
		Observations: []string{"Stress dropped"},
		Suggestions:  []string{"Keep the morning walk"},
	}}
	lf := &mockLangfuseClient{enabled: true}
	svc := NewInsightsService(wellness, model, lf, nil)

	resp, err := svc.Generate(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, model.calls)
	require.NotNil(t, model.got)
	assert.Len(t, model.got.Week, RecentWindowDays+1)
	assert.Len(t, model.got.Month, HistoryWindowDays+1)
	assert.Equal(t, 3, model.got.Snapshot.TotalEntries)

	assert.Equal(t, 2, resp.Week.TotalCheckins)
	assert.Equal(t, 3, resp.Month.TotalCheckins)
	assert.Equal(t, "A calmer end to the week.", resp.Insights.Summary)

	require.Len(t, lf.traces, 1)
	assert.Equal(t, insightsTraceName, lf.traces[0].Name)
	assert.Equal(t, userID.String(), lf.traces[0].UserID)
	assert.Equal(t, "generated-trace-id", resp.TraceID)
}

func TestInsightsService_Generate_WindowsEndTogether(t *testing.T) {
	now := time.Date(2025, 2, 10, 23, 59, 59, 0, time.UTC)
	userRepo := NewMockUserRepository()
	userID := userRepo.addUser()
	repo := NewMockCheckInRepository()
	repo.add(checkInAt(userID, now.Add(-time.Minute), "calm", intPtr(8), intPtr(2)))
	wellness := NewWellnessService(repo, userRepo, 30, steppingClock(now, time.Second))

	model := &mockLLM{out: &domain.LLMReflectionOutput{Summary: "ok"}}
	svc := NewInsightsService(wellness, model, &mockLangfuseClient{}, nil)

	resp, err := svc.Generate(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, resp.Week.To, resp.Month.To)
	require.NotEmpty(t, model.got.Week)
	require.NotEmpty(t, model.got.Month)
	assert.Equal(t, "2025-02-10", model.got.Week[len(model.got.Week)-1].Date)
	assert.Equal(t, "2025-02-10", model.got.Month[len(model.got.Month)-1].Date)
	assert.Equal(t, 1, model.got.Week[len(model.got.Week)-1].Count)
	assert.Equal(t, int32(1), userRepo.existsCalls.Load())
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		llm     llm.InsightsLLM
		userID  func(existing uuid.UUID) uuid.UUID
		wantErr error
	}{
		{
			name:    "llm not configured",
			llm:     nil,
			wantErr: llm.ErrOpenAIUnavailable,
		},
		{
			name:    "llm request failure",
			llm:     &mockLLM{err: fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest)},
			wantErr: llm.ErrOpenAIRequest,
		},
		{
			name:    "unknown user",
			llm:     &mockLLM{},
			userID:  func(uuid.UUID) uuid.UUID { return uuid.New() },
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, wellness := newInsightsFixture(t, now)
			if tt.userID != nil {
				userID = tt.userID(userID)
			}
			svc := NewInsightsService(wellness, tt.llm, &mockLangfuseClient{}, nil)

			resp, err := svc.Generate(context.Background(), userID)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestInsightsService_Generate_LangfuseDisabled(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	userID, wellness := newInsightsFixture(t, now)
	lf := &mockLangfuseClient{enabled: false}
	svc := NewInsightsService(wellness, &mockLLM{out: &domain.LLMReflectionOutput{Summary: "ok"}}, lf, nil)

	resp, err := svc.Generate(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, lf.traces)
	assert.Empty(t, resp.TraceID)
}

func TestInsightsService_SubmitFeedback(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		req        *domain.InsightsFeedbackRequest
		enabled    bool
		wantErr    error
		wantScores int
	}{
		{
			name:       "recorded",
			req:        &domain.InsightsFeedbackRequest{TraceID: "abc", Score: 4, Comment: "spot on"},
			enabled:    true,
			wantScores: 1,
		},
		{
			name:    "accepted while langfuse disabled",
			req:     &domain.InsightsFeedbackRequest{TraceID: "abc", Score: 5},
			enabled: false,
		},
		{
			name:    "missing trace id",
			req:     &domain.InsightsFeedbackRequest{Score: 3},
			enabled: true,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "score out of range",
			req:     &domain.InsightsFeedbackRequest{TraceID: "abc", Score: 6},
			enabled: true,
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf := &mockLangfuseClient{enabled: tt.enabled}
			svc := NewInsightsService(nil, nil, lf, nil)

			err := svc.SubmitFeedback(context.Background(), userID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, lf.scores, tt.wantScores)
			if tt.wantScores > 0 {
				assert.Equal(t, feedbackScoreName, lf.scores[0].Name)
				assert.Equal(t, float64(tt.req.Score), lf.scores[0].Value)
			}
		})
	}
}
