package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CheckInRepository is the append-only store of check-ins. Rows are never
// updated or deleted.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) error
	// ListRecent returns up to limit check-ins, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CheckIn, error)
	// ListByRange returns check-ins recorded in [from, to], newest first.
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CheckIn, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

// Create inserts checkIn. A second insert with the same user and
// client_request_id fails with domain.ErrDuplicateRequest.
func (r *checkInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	err := r.db.WithContext(ctx).Create(checkIn).Error
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateRequest, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *checkInRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at DESC").
		Order("id DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) List(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// Keyset continuation for (recorded_at DESC, id DESC)
			query = query.Where(
				"(recorded_at < ?) OR (recorded_at = ? AND id < ?)",
				cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
			)
		}
	}

	// One extra row tells the service whether another page exists
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var checkIns []domain.CheckIn
	if err := query.Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&checkIn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // absence is the normal case for a first request
		}
		return nil, err
	}
	return &checkIn, nil
}
