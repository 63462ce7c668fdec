package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns a stream of check-ins. Timezone is kept for display only;
// analytics always bucket by UTC day.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a user.
type CreateUserRequest struct {
	// IANA timezone used when presenting check-in times
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UserResponse is the response body for user endpoints.
// @Description Registered user.
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timezone  string    `json:"timezone" example:"Europe/Prague"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T09:00:00Z"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}
