package analytics

import "github.com/blaisecz/wellness-tracker/internal/domain"

const (
	CalmMinEnergy = 6
	CalmMaxStress = 4
)

// IsCalm classifies a single check-in. eligible is false when energy or
// stress is missing; such records are neither calm nor non-calm.
func IsCalm(r domain.CheckIn) (calm, eligible bool) {
	if r.Energy == nil || r.Stress == nil {
		return false, false
	}
	return *r.Energy >= CalmMinEnergy && *r.Stress <= CalmMaxStress, true
}

// CalmPercentage is round(100 * calm / eligible), half-up, in [0,100]. It is
// 0 when no record is eligible.
func CalmPercentage(records []domain.CheckIn) int {
	calm, eligible := 0, 0
	for _, r := range records {
		c, ok := IsCalm(r)
		if !ok {
			continue
		}
		eligible++
		if c {
			calm++
		}
	}
	return percentHalfUp(calm, eligible)
}

func percentHalfUp(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}

// Average returns the mean rounded half-up to one decimal, or nil for no values.
func Average(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	n := len(values)
	// Ratings are positive, so integer division floors.
	tenths := (20*sum + n) / (2 * n)
	avg := float64(tenths) / 10
	return &avg
}

func energyValues(records []domain.CheckIn) []int {
	var values []int
	for _, r := range records {
		if r.Energy != nil {
			values = append(values, *r.Energy)
		}
	}
	return values
}

func stressValues(records []domain.CheckIn) []int {
	var values []int
	for _, r := range records {
		if r.Stress != nil {
			values = append(values, *r.Stress)
		}
	}
	return values
}
