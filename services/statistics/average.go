package statistics

import (
	"sort"

	"goodjob/models"
)

// Average is the mean of field over records after the extreme 1% of the
// reported values has been trimmed from each end. Records without the field
// count toward neither the sum nor the denominator. It returns nil when no
// published record reports the field.
func Average(records []models.Working, field models.Field) *float64 {
	samples := make([]float64, 0, len(records))
	for _, r := range records {
		if !r.IsPublished() {
			continue
		}
		if v := Value(r, field); v != nil {
			samples = append(samples, *v)
		}
	}
	if len(samples) == 0 {
		return nil
	}
	sort.Float64s(samples)
	kept := Trim(samples)

	var sum float64
	for _, v := range kept {
		sum += v
	}
	mean := sum / float64(len(kept))
	return &mean
}

// Averages computes Average for every numeric field.
func Averages(records []models.Working) models.Average {
	out := make(models.Average, len(models.NumericFields))
	for _, f := range models.NumericFields {
		out[f] = Average(records, f)
	}
	return out
}
