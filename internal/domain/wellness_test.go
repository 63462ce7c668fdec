package domain

import (
	"testing"
	"time"
)

func TestTrendSummary_Days_Sorted(t *testing.T) {
	trend := TrendSummary{
		DailyBuckets: map[string]DailyBucket{
			"2025-01-03": {Date: "2025-01-03", Count: 1},
			"2025-01-01": {Date: "2025-01-01", Count: 2},
			"2025-01-02": {Date: "2025-01-02", Count: 1},
		},
	}

	days := trend.Days()
	want := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	if len(days) != len(want) {
		t.Fatalf("Days() = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("Days() = %v, want %v", days, want)
		}
	}
}

func TestTrendSummary_Series_FillsGaps(t *testing.T) {
	trend := TrendSummary{
		DailyBuckets: map[string]DailyBucket{
			"2025-01-01": {Date: "2025-01-01", Moods: []string{"calm", "anxious"}, Count: 2},
			"2025-01-03": {Date: "2025-01-03", Moods: []string{"calm"}, Count: 1},
		},
		From: time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 3, 6, 0, 0, 0, time.UTC),
	}

	series := trend.Series()
	if len(series) != 4 {
		t.Fatalf("expected 4 days, got %d: %+v", len(series), series)
	}

	wantDates := []string{"2024-12-31", "2025-01-01", "2025-01-02", "2025-01-03"}
	wantCounts := []int{0, 2, 0, 1}
	for i, b := range series {
		if b.Date != wantDates[i] {
			t.Errorf("series[%d].Date = %s, want %s", i, b.Date, wantDates[i])
		}
		if b.Count != wantCounts[i] {
			t.Errorf("series[%d].Count = %d, want %d", i, b.Count, wantCounts[i])
		}
	}

	gap := series[2]
	if gap.DominantMood != NeutralMood || gap.Moods == nil || gap.AverageEnergy != nil {
		t.Errorf("gap bucket not zero-filled: %+v", gap)
	}

	// Series must not add keys to the sparse map.
	if len(trend.DailyBuckets) != 2 {
		t.Errorf("Series mutated DailyBuckets: %v", trend.DailyBuckets)
	}
}

func TestTrendSummary_Series_InvertedWindow(t *testing.T) {
	trend := TrendSummary{
		From: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if series := trend.Series(); series != nil {
		t.Fatalf("expected nil series, got %+v", series)
	}
}

func TestWellnessSnapshot_IsEmpty(t *testing.T) {
	if !(WellnessSnapshot{DominantMood: NeutralMood}).IsEmpty() {
		t.Error("zero-entry snapshot should be empty")
	}
	if (WellnessSnapshot{TotalEntries: 1, DominantMood: NeutralMood}).IsEmpty() {
		t.Error("snapshot with a genuine neutral entry should not be empty")
	}
}
