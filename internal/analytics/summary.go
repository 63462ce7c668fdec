package analytics

import (
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// Snapshot summarizes records. The empty set produces the "no data" snapshot:
// neutral moods, zero counts and nil averages.
func Snapshot(records []domain.CheckIn) domain.WellnessSnapshot {
	return domain.WellnessSnapshot{
		DominantMood:     DominantMood(records),
		CalmPercentage:   CalmPercentage(records),
		TotalEntries:     len(records),
		RecentMood:       RecentMood(records),
		MoodDistribution: MoodDistribution(records),
		AverageEnergy:    Average(energyValues(records)),
		AverageStress:    Average(stressValues(records)),
	}
}

// Trends buckets the records of the trailing window ending at now.
// TotalCheckins equals the number of records inside the window.
func Trends(records []domain.CheckIn, windowDays int, now time.Time) domain.TrendSummary {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	from, to := Window(windowDays, now)
	buckets := BucketByDay(records, windowDays, now)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}

	return domain.TrendSummary{
		DailyBuckets:  buckets,
		TotalCheckins: total,
		WindowDays:    windowDays,
		From:          from,
		To:            to,
	}
}
