package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	// NeutralMood is recorded when a check-in carries no mood label. It also
	// doubles as the "no data yet" value of derived summaries.
	NeutralMood = "neutral"

	// MinScale and MaxScale bound energy and stress ratings.
	MinScale = 1
	MaxScale = 10

	MaxGoals      = 20
	MaxGoalLength = 200
)

// CheckIn is a single wellness snapshot. Rows are append-only.
type CheckIn struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_check_ins_user_recorded;uniqueIndex:idx_check_ins_user_client_request,priority:1" json:"user_id"`
	RecordedAt      time.Time      `gorm:"not null;index:idx_check_ins_user_recorded,sort:desc" json:"recorded_at"`
	Mood            string         `gorm:"type:varchar(64);not null;default:'neutral'" json:"mood"`
	Energy          *int           `gorm:"type:smallint;check:energy BETWEEN 1 AND 10" json:"energy,omitempty"`
	Stress          *int           `gorm:"type:smallint;check:stress BETWEEN 1 AND 10" json:"stress,omitempty"`
	Gratitude       *string        `gorm:"type:text" json:"gratitude,omitempty"`
	Reflection      *string        `gorm:"type:text" json:"reflection,omitempty"`
	Goals           pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"goals"`
	ClientRequestID *string        `gorm:"type:varchar(255);uniqueIndex:idx_check_ins_user_client_request,priority:2,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// CreateCheckInRequest is the request body for appending a check-in.
// @Description Request payload for recording a wellness check-in.
type CreateCheckInRequest struct {
	// Free-form mood label; blank defaults to "neutral"
	Mood string `json:"mood,omitempty" validate:"max=64" example:"calm"`
	// Energy rating from 1 (drained) to 10 (energized)
	Energy *int `json:"energy,omitempty" validate:"omitempty,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Stress rating from 1 (relaxed) to 10 (overwhelmed)
	Stress *int `json:"stress,omitempty" validate:"omitempty,min=1,max=10" example:"3" minimum:"1" maximum:"10"`
	// Optional gratitude note
	Gratitude *string `json:"gratitude,omitempty" validate:"omitempty,max=2000" example:"A long walk by the river"`
	// Optional reflection note
	Reflection *string `json:"reflection,omitempty" validate:"omitempty,max=4000" example:"Felt focused after a good night"`
	// Ordered list of goals for the day
	Goals []string `json:"goals,omitempty" validate:"omitempty,max=20,dive,required,max=200" example:"drink water,stretch"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// NewCheckIn validates req and builds the record stamped at now. The returned
// error wraps ErrInvalidInput.
func NewCheckIn(userID uuid.UUID, req *CreateCheckInRequest, now time.Time) (*CheckIn, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty check-in", ErrInvalidInput)
	}
	if err := checkScale("energy", req.Energy); err != nil {
		return nil, err
	}
	if err := checkScale("stress", req.Stress); err != nil {
		return nil, err
	}
	if len(req.Goals) > MaxGoals {
		return nil, fmt.Errorf("%w: at most %d goals allowed", ErrInvalidInput, MaxGoals)
	}

	goals := make(pq.StringArray, 0, len(req.Goals))
	for i, g := range req.Goals {
		g = strings.TrimSpace(g)
		if g == "" {
			return nil, fmt.Errorf("%w: goal %d is blank", ErrInvalidInput, i)
		}
		if utf8.RuneCountInString(g) > MaxGoalLength {
			return nil, fmt.Errorf("%w: goal %d exceeds %d characters", ErrInvalidInput, i, MaxGoalLength)
		}
		goals = append(goals, g)
	}

	return &CheckIn{
		ID:              uuid.New(),
		UserID:          userID,
		RecordedAt:      now.UTC(),
		Mood:            NormalizeMood(req.Mood),
		Energy:          copyInt(req.Energy),
		Stress:          copyInt(req.Stress),
		Gratitude:       trimmedOrNil(req.Gratitude),
		Reflection:      trimmedOrNil(req.Reflection),
		Goals:           goals,
		ClientRequestID: req.ClientRequestID,
	}, nil
}

// NormalizeMood trims the label and maps blank labels to NeutralMood.
func NormalizeMood(mood string) string {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return NeutralMood
	}
	return mood
}

func checkScale(field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < MinScale || *v > MaxScale {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, field, MinScale, MaxScale)
	}
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// CheckInResponse is the response body for check-in endpoints.
// @Description Recorded wellness check-in.
type CheckInResponse struct {
	// Unique check-in identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Owner user ID
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// When the check-in was recorded (UTC)
	RecordedAt time.Time `json:"recorded_at" example:"2025-01-01T10:00:00Z"`
	// Mood label
	Mood string `json:"mood" example:"calm"`
	// Energy rating (1-10), omitted when not reported
	Energy *int `json:"energy,omitempty" example:"8"`
	// Stress rating (1-10), omitted when not reported
	Stress *int `json:"stress,omitempty" example:"2"`
	// Gratitude note
	Gratitude *string `json:"gratitude,omitempty"`
	// Reflection note
	Reflection *string `json:"reflection,omitempty"`
	// Goals for the day
	Goals []string `json:"goals"`
	// Client-provided request ID (if any)
	ClientRequestID *string `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T10:00:01Z"`
}

func (c *CheckIn) ToResponse() CheckInResponse {
	goals := []string(c.Goals)
	if goals == nil {
		goals = []string{}
	}
	return CheckInResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		RecordedAt:      c.RecordedAt,
		Mood:            c.Mood,
		Energy:          c.Energy,
		Stress:          c.Stress,
		Gratitude:       c.Gratitude,
		Reflection:      c.Reflection,
		Goals:           goals,
		ClientRequestID: c.ClientRequestID,
		CreatedAt:       c.CreatedAt,
	}
}

// CheckInListResponse is the response body for listing check-ins.
// @Description Paginated list of check-ins, newest first.
type CheckInListResponse struct {
	Data       []CheckInResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// CheckInFilter contains filter parameters for listing check-ins.
type CheckInFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
