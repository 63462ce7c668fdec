package analytics

import (
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// MoodDistribution counts check-ins per normalized mood label. Labels that
// never occur are absent; the counts sum to len(records).
func MoodDistribution(records []domain.CheckIn) map[string]int {
	dist := make(map[string]int)
	for _, r := range records {
		dist[domain.NormalizeMood(r.Mood)]++
	}
	return dist
}

// DominantMood returns the most frequent label. Ties go to the label whose
// latest check-in is most recent, then to the label seen first in records.
// An empty set yields domain.NeutralMood.
func DominantMood(records []domain.CheckIn) string {
	type tally struct {
		count     int
		latest    time.Time
		firstSeen int
	}
	tallies := make(map[string]*tally)
	var order []string
	for i, r := range records {
		mood := domain.NormalizeMood(r.Mood)
		t, ok := tallies[mood]
		if !ok {
			t = &tally{latest: r.RecordedAt, firstSeen: i}
			tallies[mood] = t
			order = append(order, mood)
		}
		t.count++
		if r.RecordedAt.After(t.latest) {
			t.latest = r.RecordedAt
		}
	}

	if len(order) == 0 {
		return domain.NeutralMood
	}
	// order is first-seen order, so a later candidate only wins on a strictly
	// better count or strictly later timestamp.
	best := order[0]
	for _, mood := range order[1:] {
		t, b := tallies[mood], tallies[best]
		if t.count > b.count || (t.count == b.count && t.latest.After(b.latest)) {
			best = mood
		}
	}
	return best
}

// RecentMood returns the mood of the latest check-in. Equal timestamps keep
// the earlier position in records.
func RecentMood(records []domain.CheckIn) string {
	if len(records) == 0 {
		return domain.NeutralMood
	}
	idx := 0
	for i := 1; i < len(records); i++ {
		if records[i].RecordedAt.After(records[idx].RecordedAt) {
			idx = i
		}
	}
	return domain.NormalizeMood(records[idx].Mood)
}
