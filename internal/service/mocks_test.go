package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/langfuse"
	"github.com/blaisecz/wellness-tracker/pkg/pagination"
	"github.com/google/uuid"
)

// MockCheckInRepository is an in-memory CheckInRepository.
type MockCheckInRepository struct {
	mu        sync.Mutex
	checkIns  []domain.CheckIn
	err       error
	createErr error

	lastFrom, lastTo time.Time
	lastLimit        int
}

func NewMockCheckInRepository() *MockCheckInRepository {
	return &MockCheckInRepository{}
}

func (m *MockCheckInRepository) add(checkIns ...domain.CheckIn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkIns = append(m.checkIns, checkIns...)
}

func (m *MockCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.createErr != nil {
		return m.createErr
	}
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	checkIn.CreatedAt = checkIn.RecordedAt
	m.checkIns = append(m.checkIns, *checkIn)
	return nil
}

// newestFirst mirrors ORDER BY recorded_at DESC, id DESC.
func newestFirst(checkIns []domain.CheckIn) {
	sort.SliceStable(checkIns, func(i, j int) bool {
		if !checkIns[i].RecordedAt.Equal(checkIns[j].RecordedAt) {
			return checkIns[i].RecordedAt.After(checkIns[j].RecordedAt)
		}
		return checkIns[i].ID.String() > checkIns[j].ID.String()
	})
}

func (m *MockCheckInRepository) forUser(userID uuid.UUID, keep func(domain.CheckIn) bool) []domain.CheckIn {
	var result []domain.CheckIn
	for _, c := range m.checkIns {
		if c.UserID == userID && keep(c) {
			result = append(result, c)
		}
	}
	newestFirst(result)
	return result
}

func (m *MockCheckInRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.lastLimit = limit
	result := m.forUser(userID, func(domain.CheckIn) bool { return true })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockCheckInRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.lastFrom, m.lastTo = from, to
	return m.forUser(userID, func(c domain.CheckIn) bool {
		return !c.RecordedAt.Before(from) && !c.RecordedAt.After(to)
	}), nil
}

func (m *MockCheckInRepository) List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	cursor, _ := pagination.DecodeCursor(filter.Cursor)
	result := m.forUser(userID, func(c domain.CheckIn) bool {
		if filter.From != nil && c.RecordedAt.Before(*filter.From) {
			return false
		}
		if filter.To != nil && c.RecordedAt.After(*filter.To) {
			return false
		}
		if cursor != nil {
			if c.RecordedAt.After(cursor.RecordedAt) {
				return false
			}
			if c.RecordedAt.Equal(cursor.RecordedAt) && c.ID.String() >= cursor.ID.String() {
				return false
			}
		}
		return true
	})

	limit := pagination.NormalizeLimit(filter.Limit) + 1
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockCheckInRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.checkIns {
		c := m.checkIns[i]
		if c.UserID == userID && c.ClientRequestID != nil && *c.ClientRequestID == clientRequestID {
			return &c, nil
		}
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users       map[uuid.UUID]*domain.User
	err         error
	existsCalls atomic.Int32
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.existsCalls.Add(1)
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

func (m *MockUserRepository) addUser() uuid.UUID {
	id := uuid.New()
	m.users[id] = &domain.User{ID: id, Timezone: "UTC"}
	return id
}

// mockLLM records the context it was asked about.
type mockLLM struct {
	out   *domain.LLMReflectionOutput
	err   error
	calls int
	got   *domain.InsightsContext
}

func (m *mockLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMReflectionOutput, error) {
	m.calls++
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

type mockLangfuseClient struct {
	enabled  bool
	traceErr error
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	if m.traceErr != nil {
		return "", m.traceErr
	}
	if in.ID != "" {
		return in.ID, nil
	}
	return "generated-trace-id", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error { return nil }

func (m *mockLangfuseClient) Close(ctx context.Context) error { return nil }

// fixedClock pins "now" for deterministic windows.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// steppingClock advances by step on every read.
func steppingClock(start time.Time, step time.Duration) Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func checkInAt(userID uuid.UUID, at time.Time, mood string, energy, stress *int) domain.CheckIn {
	return domain.CheckIn{
		ID:         uuid.New(),
		UserID:     userID,
		RecordedAt: at,
		Mood:       mood,
		Energy:     energy,
		Stress:     stress,
	}
}
