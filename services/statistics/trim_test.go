package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCut(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{3, 0},
		{99, 0},
		{100, 1},
		{199, 1},
		{200, 2},
		{250, 2},
		{700, 7},
		{10000, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Cut(tt.n), "n=%d", tt.n)
	}
}

func TestTrim(t *testing.T) {
	t.Run("small samples are kept whole", func(t *testing.T) {
		samples := []float64{1, 2, 3}
		assert.Equal(t, samples, Trim(samples))
		assert.Empty(t, Extremes(samples))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Trim([]float64{}))
		assert.Empty(t, Extremes([]float64{}))
	})

	t.Run("two hundred samples lose two at each end", func(t *testing.T) {
		samples := make([]int, 200)
		for i := range samples {
			samples[i] = i + 1
		}
		kept := Trim(samples)
		assert.Len(t, kept, 196)
		assert.Equal(t, 3, kept[0])
		assert.Equal(t, 198, kept[len(kept)-1])

		assert.Equal(t, []int{1, 2, 199, 200}, Extremes(samples))
	})
}
