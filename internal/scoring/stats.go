package scoring

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// stdDevPop returns the population standard deviation, or 0 for an empty
// slice.
func stdDevPop(values []float64) float64 {
	sd, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return 0
	}
	return sd
}

// NormalCDF approximates the standard normal cumulative distribution
// function using the Abramowitz and Stegun polynomial. The constants are
// reproduced exactly to keep percentile output identical to the production
// scorer.
func NormalCDF(z float64) float64 {
	t := 1 / (1 + 0.2316419*math.Abs(z))
	d := 0.3989423 * math.Exp(-z*z/2)
	prob := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))
	if z > 0 {
		prob = 1 - prob
	}
	return prob
}

// sortedKeys returns the map keys in lexicographic order. Go maps have no
// iteration order, so every pass over an answers map goes through this to
// keep scoring bit-identical across runs.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
