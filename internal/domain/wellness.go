package domain

import (
	"sort"
	"time"
)

// DayLayout is the key format of trend buckets. Days are UTC calendar days.
const DayLayout = "2006-01-02"

// WellnessSnapshot is the derived summary of a check-in set. It is computed
// on every request and never stored.
// @Description Mood and calm summary over the most recent check-ins.
type WellnessSnapshot struct {
	// Most frequent mood; "neutral" when there is no data
	DominantMood string `json:"dominant_mood" example:"calm"`
	// Share of eligible check-ins that were calm (0-100)
	CalmPercentage int `json:"calm_percentage" example:"67"`
	// Number of check-ins summarized
	TotalEntries int `json:"total_entries" example:"3"`
	// Mood of the latest check-in; "neutral" when there is no data
	RecentMood string `json:"recent_mood" example:"calm"`
	// Count per mood label; labels with no check-ins are absent
	MoodDistribution map[string]int `json:"mood_distribution"`
	// Mean energy (one decimal); null when no check-in reported energy
	AverageEnergy *float64 `json:"average_energy" example:"6"`
	// Mean stress (one decimal); null when no check-in reported stress
	AverageStress *float64 `json:"average_stress" example:"4.3"`
}

// IsEmpty reports the canonical "new user, no data" state.
func (s WellnessSnapshot) IsEmpty() bool {
	return s.TotalEntries == 0
}

// DailyBucket aggregates the check-ins of one UTC calendar day. Moods, Energy
// and Stress are in chronological order.
// @Description Check-ins of a single UTC day.
type DailyBucket struct {
	// UTC calendar day (YYYY-MM-DD)
	Date string `json:"date" example:"2025-01-01"`
	// Moods recorded that day, oldest first
	Moods []string `json:"moods" example:"calm,anxious"`
	// Reported energy values, oldest first
	Energy []int `json:"energy" example:"8,3"`
	// Reported stress values, oldest first
	Stress []int `json:"stress" example:"2,8"`
	// Number of check-ins that day
	Count int `json:"count" example:"2"`
	// Most frequent mood that day
	DominantMood string `json:"dominant_mood" example:"anxious"`
	// Calm share among eligible check-ins that day (0-100)
	CalmPercentage int `json:"calm_percentage" example:"50"`
	// Mean energy that day; null when none reported
	AverageEnergy *float64 `json:"average_energy" example:"5.5"`
	// Mean stress that day; null when none reported
	AverageStress *float64 `json:"average_stress" example:"5"`
}

// EmptyBucket is the zero-filled bucket used for days without check-ins in
// dense series.
func EmptyBucket(day string) DailyBucket {
	return DailyBucket{
		Date:         day,
		Moods:        []string{},
		Energy:       []int{},
		Stress:       []int{},
		DominantMood: NeutralMood,
	}
}

// TrendSummary is the day-bucketed view over a trailing window. DailyBuckets
// is sparse: a day without check-ins has no key.
// @Description Daily buckets over a trailing window.
type TrendSummary struct {
	// Buckets keyed by UTC day; days without check-ins are omitted
	DailyBuckets map[string]DailyBucket `json:"daily_buckets"`
	// Check-ins inside the window
	TotalCheckins int `json:"total_checkins" example:"3"`
	// Window length in days
	WindowDays int `json:"window_days" example:"7"`
	// Window start (inclusive)
	From time.Time `json:"from" example:"2024-12-27T00:00:00Z"`
	// Window end (inclusive)
	To time.Time `json:"to" example:"2025-01-03T00:00:00Z"`
}

// Days returns the bucket keys in chronological order.
func (t TrendSummary) Days() []string {
	days := make([]string, 0, len(t.DailyBuckets))
	for day := range t.DailyBuckets {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Series returns one bucket per UTC day from From through To, filling days
// without check-ins with EmptyBucket.
func (t TrendSummary) Series() []DailyBucket {
	if t.To.Before(t.From) {
		return nil
	}
	start := truncateDay(t.From)
	end := truncateDay(t.To)

	var series []DailyBucket
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		if b, ok := t.DailyBuckets[key]; ok {
			series = append(series, b)
			continue
		}
		series = append(series, EmptyBucket(key))
	}
	return series
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
