package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodjob/models"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{5}, Paginate(items, 2, 2))

	empty := Paginate(items, 3, 2)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Empty(t, Paginate(items, -1, 2))
	assert.Empty(t, Paginate(items, 0, 0))
	assert.Empty(t, Paginate([]int{}, 0, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Paginate(items, 0, math.MaxInt))
}

func TestPaginateHugePage(t *testing.T) {
	items := make([]int, 30)

	for _, page := range []int{368934881474191033, math.MaxInt / 25, math.MaxInt} {
		got := Paginate(items, page, 25)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Len(t, Paginate(items, 1, 25), 5)
}

func TestSkipExtremeListing(t *testing.T) {
	records := wageSeries(200, 100)

	sorted, defined := SortByField(records, models.FieldEstimatedHourlyWage, models.Ascending)
	require.Equal(t, 200, defined)

	central := Trim(sorted[:defined])
	require.Len(t, central, 196)

	page := Paginate(central, 0, 25)
	require.Len(t, page, 25)
	wages := hourlyWages(page)
	assert.Equal(t, 300.0, wages[0])
	assert.Equal(t, 2700.0, wages[24])

	extremes := hourlyWages(Extremes(sorted[:defined]))
	assert.Equal(t, []float64{100, 200, 19900, 20000}, extremes)
}
