package statistics

import (
	"fmt"
	"time"

	"goodjob/models"
)

var baseTime = time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func ans(a models.Answer) *models.Answer { return &a }

// working builds a published record; seq spaces created_at by a minute.
func working(seq int, jobTitle string, company models.Company) models.Working {
	return models.Working{
		ID:        fmt.Sprintf("%s-%d", jobTitle, seq),
		JobTitle:  jobTitle,
		Company:   company,
		Status:    models.StatusPublished,
		CreatedAt: baseTime.Add(time.Duration(seq) * time.Minute),
	}
}

// wageSeries returns n published records whose hourly wage runs from step to
// n*step.
func wageSeries(n int, step float64) []models.Working {
	out := make([]models.Working, 0, n)
	for i := 1; i <= n; i++ {
		w := working(i, "ENGINEER", models.Company{ID: "84149961", Name: "COMPANY1"})
		w.EstimatedHourlyWage = f64(float64(i) * step)
		out = append(out, w)
	}
	return out
}

func hourlyWages(records []models.Working) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		if v := Value(r, models.FieldEstimatedHourlyWage); v != nil {
			out = append(out, *v)
		}
	}
	return out
}
