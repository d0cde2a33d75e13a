package statistics

// extremeDivisor expresses the 1% cut taken from each end of a sorted sample
// as integer division, so floor(n*0.01) never suffers float rounding.
const extremeDivisor = 100

// Cut returns how many samples are discarded from each end of n sorted
// samples. It is zero below 100 samples.
func Cut(n int) int {
	cut := n / extremeDivisor
	if 2*cut >= n {
		return 0
	}
	return cut
}

// Trim returns the central part of sorted that survives discarding the
// extreme 1% at both ends. The result shares sorted's backing array.
func Trim[T any](sorted []T) []T {
	cut := Cut(len(sorted))
	return sorted[cut : len(sorted)-cut]
}

// Extremes returns the samples Trim discards: the lowest cut followed by the
// highest cut, in sorted's order.
func Extremes[T any](sorted []T) []T {
	cut := Cut(len(sorted))
	out := make([]T, 0, 2*cut)
	out = append(out, sorted[:cut]...)
	out = append(out, sorted[len(sorted)-cut:]...)
	return out
}
