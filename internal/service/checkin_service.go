package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/metrics"
	"github.com/blaisecz/wellness-tracker/internal/repository"
	"github.com/blaisecz/wellness-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type CheckInService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.CheckIn, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) (*domain.CheckInListResponse, error)
}

type checkInService struct {
	repo     repository.CheckInRepository
	userRepo repository.UserRepository
	metrics  *metrics.Metrics
	clock    Clock
}

func NewCheckInService(
	repo repository.CheckInRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	clock Clock,
) CheckInService {
	return &checkInService{
		repo:     repo,
		userRepo: userRepo,
		metrics:  m,
		clock:    clock,
	}
}

// Create appends a check-in stamped with the service clock.
// Returns (checkIn, isExisting, error); isExisting is true when an earlier
// check-in with the same client_request_id is replayed.
func (s *checkInService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.CheckIn, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// A retry carrying an invalid payload is rejected even when its
	// client_request_id is already stored.
	checkIn, err := domain.NewCheckIn(userID, req, s.clock.now())
	if err != nil {
		return nil, false, err
	}

	if existing, err := s.findReplay(ctx, userID, req); err != nil || existing != nil {
		return existing, existing != nil, err
	}

	if err := s.repo.Create(ctx, checkIn); err != nil {
		if !errors.Is(err, domain.ErrDuplicateRequest) {
			return nil, false, fmt.Errorf("store check-in: %w", err)
		}
		// A concurrent request with the same client_request_id won the
		// unique index.
		existing, lookupErr := s.findReplay(ctx, userID, req)
		if lookupErr != nil {
			return nil, false, lookupErr
		}
		if existing == nil {
			return nil, false, fmt.Errorf("%w: client_request_id already in use", domain.ErrConflict)
		}
		return existing, true, nil
	}

	s.metrics.CheckInCreated()
	logging.FromContext(ctx).Debug("check-in recorded",
		"user_id", userID,
		"check_in_id", checkIn.ID,
		"mood", checkIn.Mood,
	)

	return checkIn, false, nil
}

func (s *checkInService) findReplay(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.CheckIn, error) {
	if req == nil || req.ClientRequestID == nil || *req.ClientRequestID == "" {
		return nil, nil
	}
	existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.metrics.CheckInReplayed()
	}
	return existing, nil
}

func (s *checkInService) List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) (*domain.CheckInListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if filter.Cursor != "" {
		if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
			return nil, fmt.Errorf("%w: malformed cursor", domain.ErrInvalidInput)
		}
	}

	checkIns, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(checkIns) > limit
	if hasMore {
		checkIns = checkIns[:limit]
	}

	response := &domain.CheckInListResponse{
		Data: make([]domain.CheckInResponse, len(checkIns)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range checkIns {
		response.Data[i] = checkIns[i].ToResponse()
	}

	if hasMore && len(checkIns) > 0 {
		last := checkIns[len(checkIns)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			RecordedAt: last.RecordedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
