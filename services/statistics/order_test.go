package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodjob/models"
)

func weekTimes(records []models.Working) []interface{} {
	out := make([]interface{}, len(records))
	for i, r := range records {
		if r.WeekWorkTime == nil {
			out[i] = nil
			continue
		}
		out[i] = *r.WeekWorkTime
	}
	return out
}

func TestSortByField(t *testing.T) {
	company := models.Company{Name: "COMPANY1"}
	values := []*float64{f64(40), nil, f64(60), f64(40), nil, f64(50)}
	var records []models.Working
	for i, v := range values {
		w := working(i+1, "ENGINEER", company)
		w.WeekWorkTime = v
		records = append(records, w)
	}

	t.Run("ascending puts missing values last", func(t *testing.T) {
		sorted, defined := SortByField(records, models.FieldWeekWorkTime, models.Ascending)
		assert.Equal(t, 4, defined)
		assert.Equal(t, []interface{}{40.0, 40.0, 50.0, 60.0, nil, nil}, weekTimes(sorted))
	})

	t.Run("descending puts missing values last", func(t *testing.T) {
		sorted, defined := SortByField(records, models.FieldWeekWorkTime, models.Descending)
		assert.Equal(t, 4, defined)
		assert.Equal(t, []interface{}{60.0, 50.0, 40.0, 40.0, nil, nil}, weekTimes(sorted))
	})

	t.Run("ties and missing values keep input order", func(t *testing.T) {
		sorted, _ := SortByField(records, models.FieldWeekWorkTime, models.Descending)
		assert.Equal(t, records[0].ID, sorted[2].ID)
		assert.Equal(t, records[3].ID, sorted[3].ID)
		assert.Equal(t, records[1].ID, sorted[4].ID)
		assert.Equal(t, records[4].ID, sorted[5].ID)
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := weekTimes(records)
		SortByField(records, models.FieldWeekWorkTime, models.Ascending)
		assert.Equal(t, before, weekTimes(records))
	})

	t.Run("created_at", func(t *testing.T) {
		sorted, defined := SortByField(records, models.FieldCreatedAt, models.Descending)
		require.Equal(t, len(records), defined)
		assert.Equal(t, records[len(records)-1].ID, sorted[0].ID)
	})
}

func TestSortGroups(t *testing.T) {
	group := func(name string, avg *float64) models.CompanyGroup {
		return models.CompanyGroup{
			Company: models.Company{Name: name},
			Average: models.Average{models.FieldEstimatedHourlyWage: avg},
		}
	}
	names := func(groups []models.CompanyGroup) []string {
		out := make([]string, len(groups))
		for i, g := range groups {
			out[i] = g.Company.Name
		}
		return out
	}
	build := func() []models.CompanyGroup {
		return []models.CompanyGroup{
			group("A", nil),
			group("B", f64(200)),
			group("C", f64(100)),
			group("D", nil),
			group("E", f64(300)),
			group("F", f64(200)),
		}
	}

	tests := []struct {
		order models.SortOrder
		want  []string
	}{
		{models.Ascending, []string{"C", "B", "F", "E", "A", "D"}},
		{models.Descending, []string{"E", "B", "F", "C", "A", "D"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			groups := build()
			SortGroups(groups, models.FieldEstimatedHourlyWage, tt.order)
			assert.Equal(t, tt.want, names(groups))
		})
	}

	t.Run("missing field in the average map sorts last", func(t *testing.T) {
		groups := []models.CompanyGroup{
			{Company: models.Company{Name: "X"}},
			group("Y", f64(1)),
		}
		SortGroups(groups, models.FieldEstimatedHourlyWage, models.Descending)
		assert.Equal(t, []string{"Y", "X"}, names(groups))
	})
}
