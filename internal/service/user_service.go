package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/internal/repository"
	"github.com/google/uuid"
)

// UserService registers users. A user has no profile beyond a display
// timezone; check-ins and summaries hang off the ID.
type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	timezone, err := normalizeTimezone(req)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Timezone: timezone,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("user registered", "user_id", user.ID, "timezone", user.Timezone)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// normalizeTimezone defaults a blank timezone to UTC and rejects names the
// tz database does not know. Summaries still bucket by UTC day.
func normalizeTimezone(req *domain.CreateUserRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("%w: empty user", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Timezone)
	if name == "" {
		return "UTC", nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil || loc == time.Local {
		return "", fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, name)
	}
	return loc.String(), nil
}
