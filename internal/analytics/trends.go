package analytics

import (
	"sort"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// DefaultTrendWindowDays is used when a non-positive window is requested.
const DefaultTrendWindowDays = 7

// Window returns the inclusive [from, to] bounds of a trailing window ending
// at now, in UTC.
func Window(windowDays int, now time.Time) (from, to time.Time) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	to = now.UTC()
	from = to.Add(-time.Duration(windowDays) * 24 * time.Hour)
	return from, to
}

// InWindow filters records to the trailing window and returns them in
// ascending timestamp order. The input is not modified.
func InWindow(records []domain.CheckIn, windowDays int, now time.Time) []domain.CheckIn {
	from, to := Window(windowDays, now)

	inside := make([]domain.CheckIn, 0, len(records))
	for _, r := range records {
		if r.RecordedAt.Before(from) || r.RecordedAt.After(to) {
			continue
		}
		inside = append(inside, r)
	}
	sort.SliceStable(inside, func(i, j int) bool {
		return inside[i].RecordedAt.Before(inside[j].RecordedAt)
	})
	return inside
}

// BucketByDay groups the records of the trailing window by UTC calendar day.
// Days without check-ins have no key.
func BucketByDay(records []domain.CheckIn, windowDays int, now time.Time) map[string]domain.DailyBucket {
	grouped := make(map[string][]domain.CheckIn)
	for _, r := range InWindow(records, windowDays, now) {
		day := r.RecordedAt.UTC().Format(domain.DayLayout)
		grouped[day] = append(grouped[day], r)
	}

	buckets := make(map[string]domain.DailyBucket, len(grouped))
	for day, dayRecords := range grouped {
		buckets[day] = summarizeDay(day, dayRecords)
	}
	return buckets
}

// summarizeDay expects dayRecords in chronological order.
func summarizeDay(day string, dayRecords []domain.CheckIn) domain.DailyBucket {
	moods := make([]string, 0, len(dayRecords))
	for _, r := range dayRecords {
		moods = append(moods, domain.NormalizeMood(r.Mood))
	}
	energy := energyValues(dayRecords)
	stress := stressValues(dayRecords)

	return domain.DailyBucket{
		Date:           day,
		Moods:          moods,
		Energy:         nonNil(energy),
		Stress:         nonNil(stress),
		Count:          len(dayRecords),
		DominantMood:   DominantMood(dayRecords),
		CalmPercentage: CalmPercentage(dayRecords),
		AverageEnergy:  Average(energy),
		AverageStress:  Average(stress),
	}
}

func nonNil(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
