// Package seed fills a fresh database with demo users and check-ins.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const seededDays = 40

// Users are the fixed demo accounts. Their IDs are stable so repeated runs
// reuse them.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

var (
	calmMoods     = []string{"calm", "content", "grateful", "focused"}
	restlessMoods = []string{"anxious", "tired", "frustrated", "sad"}
	sampleGoals   = []string{"drink water", "stretch", "walk outside", "read 20 pages", "call a friend", "sleep by 11"}
	sampleNotes   = []string{"Morning coffee on the balcony", "A kind message from a colleague", "Finished a long task", "Good dinner with family"}
)

// Run seeds the database with demo users and check-ins. Safe to call multiple
// times: check-ins carry deterministic client request IDs.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.CheckIn{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, user := range Users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	for _, user := range Users {
		checkIns := CheckIns(user.ID, now, seededDays, rng)
		for _, checkIn := range checkIns {
			err := db.Where("user_id = ? AND client_request_id = ?", checkIn.UserID, *checkIn.ClientRequestID).
				FirstOrCreate(&checkIn).Error
			if err != nil {
				return fmt.Errorf("failed to create check-in: %w", err)
			}
		}
		slog.Info("seeded check-ins", "user_id", user.ID, "timezone", user.Timezone, "check_ins", len(checkIns))
	}

	slog.Info("seed completed")
	return nil
}

// CheckIns generates one to three check-ins per day for the days before now.
// Roughly half of the days lean calm, the rest lean stressed, and some
// check-ins leave energy or stress unreported.
func CheckIns(userID uuid.UUID, now time.Time, days int, rng *rand.Rand) []domain.CheckIn {
	var out []domain.CheckIn
	for day := 0; day < days; day++ {
		date := now.AddDate(0, 0, -day)
		perDay := 1 + rng.Intn(3)
		calmDay := rng.Float32() < 0.5

		for n := 0; n < perDay; n++ {
			at := time.Date(date.Year(), date.Month(), date.Day(), 7+n*5+rng.Intn(4), rng.Intn(60), 0, 0, time.UTC)
			if at.After(now) {
				continue
			}

			var mood string
			var energy, stress int
			if calmDay {
				mood = calmMoods[rng.Intn(len(calmMoods))]
				energy, stress = 6+rng.Intn(5), 1+rng.Intn(4)
			} else {
				mood = restlessMoods[rng.Intn(len(restlessMoods))]
				energy, stress = 1+rng.Intn(6), 4+rng.Intn(7)
			}

			reqID := fmt.Sprintf("seed-%s-%d-%d", userID, day, n)
			checkIn := domain.CheckIn{
				ID:              uuid.New(),
				UserID:          userID,
				RecordedAt:      at,
				Mood:            mood,
				Goals:           pickGoals(rng),
				ClientRequestID: &reqID,
			}
			if rng.Float32() < 0.9 {
				checkIn.Energy = &energy
			}
			if rng.Float32() < 0.9 {
				checkIn.Stress = &stress
			}
			if rng.Float32() < 0.4 {
				note := sampleNotes[rng.Intn(len(sampleNotes))]
				checkIn.Gratitude = &note
			}
			out = append(out, checkIn)
		}
	}
	return out
}

func pickGoals(rng *rand.Rand) pq.StringArray {
	n := rng.Intn(4)
	goals := make(pq.StringArray, 0, n)
	for _, i := range rng.Perm(len(sampleGoals))[:n] {
		goals = append(goals, sampleGoals[i])
	}
	return goals
}
