// File: utils/constants.go
package utils

// StatsCachePrefix is the prefix used for Redis keys of cached statistics results.
const StatsCachePrefix = "workings:stats:"

// StatsGenerationKey holds the counter that namespaces cached statistics;
// bumping it invalidates every cached result at once.
const StatsGenerationKey = StatsCachePrefix + "generation"
