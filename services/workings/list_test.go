package workings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodjob/models"
)

// wageRepo holds n records with hourly wages step..n*step plus the given
// number of records without any wage.
func wageRepo(n int, step float64, missing int) *fakeRepo {
	repo := &fakeRepo{}
	company := models.Company{ID: "84149961", Name: "COMPANY1"}
	for i := 1; i <= n; i++ {
		w := working(i, "ENGINEER", company)
		w.EstimatedHourlyWage = f64(float64(i) * step)
		repo.records = append(repo.records, w)
	}
	for i := 0; i < missing; i++ {
		repo.records = append(repo.records, working(n+i+1, "INTERN", company))
	}
	return repo
}

func wages(list []models.Working) []float64 {
	out := make([]float64, 0, len(list))
	for _, w := range list {
		if w.EstimatedHourlyWage != nil {
			out = append(out, *w.EstimatedHourlyWage)
		}
	}
	return out
}

func TestListSkipExtremes(t *testing.T) {
	svc := newService(wageRepo(200, 100, 3))

	res, err := svc.List(context.Background(), ListQuery{
		SortBy: "estimated_hourly_wage",
		Order:  "ascending",
		Skip:   "true",
	})
	require.NoError(t, err)
	assert.Equal(t, 196, res.Total)
	require.Len(t, res.TimeAndSalary, 25)
	got := wages(res.TimeAndSalary)
	assert.Equal(t, 300.0, got[0])
	assert.Equal(t, 2700.0, got[24])
}

func TestListNullsLast(t *testing.T) {
	for _, order := range []string{"ascending", "descending"} {
		t.Run(order, func(t *testing.T) {
			svc := newService(wageRepo(3, 100, 2))

			res, err := svc.List(context.Background(), ListQuery{
				SortBy: "estimated_hourly_wage",
				Order:  order,
			})
			require.NoError(t, err)
			assert.Equal(t, 5, res.Total)
			require.Len(t, res.TimeAndSalary, 5)
			for _, w := range res.TimeAndSalary[:3] {
				assert.NotNil(t, w.EstimatedHourlyWage)
			}
			for _, w := range res.TimeAndSalary[3:] {
				assert.Nil(t, w.EstimatedHourlyWage)
			}
		})
	}
}

func TestListDefaultsToNewestFirst(t *testing.T) {
	svc := newService(wageRepo(30, 100, 0))

	res, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Total)
	require.Len(t, res.TimeAndSalary, 25)
	assert.Equal(t, "ENGINEER-30", res.TimeAndSalary[0].ID)

	res, err = svc.List(context.Background(), ListQuery{Page: "1"})
	require.NoError(t, err)
	require.Len(t, res.TimeAndSalary, 5)
	assert.Equal(t, "ENGINEER-1", res.TimeAndSalary[4].ID)

	res, err = svc.List(context.Background(), ListQuery{Page: "7"})
	require.NoError(t, err)
	require.NotNil(t, res.TimeAndSalary)
	assert.Empty(t, res.TimeAndSalary)
}

func TestListPageBeyondRange(t *testing.T) {
	svc := newService(wageRepo(200, 100, 0))

	res, err := svc.List(context.Background(), ListQuery{Page: "368934881474191033"})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Total)
	require.NotNil(t, res.TimeAndSalary)
	assert.Empty(t, res.TimeAndSalary)

	res, err = svc.ListExtremes(context.Background(), ListQuery{
		SortBy: "estimated_hourly_wage",
		Page:   "368934881474191033",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Empty(t, res.TimeAndSalary)
}

func TestListExtremes(t *testing.T) {
	svc := newService(wageRepo(200, 100, 4))

	res, err := svc.ListExtremes(context.Background(), ListQuery{
		SortBy: "estimated_hourly_wage",
		Order:  "ascending",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []float64{100, 200, 19900, 20000}, wages(res.TimeAndSalary))

	res, err = svc.ListExtremes(context.Background(), ListQuery{
		SortBy: "estimated_hourly_wage",
		Order:  "descending",
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{20000, 19900, 200, 100}, wages(res.TimeAndSalary))
}

func TestListExtremesSmallSample(t *testing.T) {
	svc := newService(wageRepo(99, 100, 0))

	res, err := svc.ListExtremes(context.Background(), ListQuery{SortBy: "estimated_hourly_wage"})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.TimeAndSalary)
}

func TestListValidation(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		field string
	}{
		{"unknown sort field", ListQuery{SortBy: "job_title"}, "sort_by"},
		{"unknown order", ListQuery{Order: "sideways"}, "order"},
		{"negative page", ListQuery{Page: "-1"}, "page"},
		{"non numeric page", ListQuery{Page: "first"}, "page"},
		{"zero limit", ListQuery{Limit: "0"}, "limit"},
		{"limit over maximum", ListQuery{Limit: "51"}, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newService(repo)

			_, err := svc.List(context.Background(), tt.query)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)

			_, err = svc.ListExtremes(context.Background(), tt.query)
			require.True(t, errors.As(err, &verr))
			assert.Zero(t, repo.findCalls)
		})
	}
}
