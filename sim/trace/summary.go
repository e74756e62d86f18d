package trace

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/disk-sim/sim"
)

// Summary aggregates statistics from one run's completions.
// Times are in input units; distances in cylinders.
type Summary struct {
	Count         int
	Makespan      float64 // latest completion time
	MeanWait      float64
	P95Wait       float64
	MaxWait       float64
	MeanService   float64 // completion - arrival
	TotalDistance int
	MeanDistance  float64
}

// Summarize computes aggregate statistics over completions.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(completions []sim.Completion) Summary {
	summary := Summary{Count: len(completions)}
	if len(completions) == 0 {
		return summary
	}

	waits := make([]float64, len(completions))
	services := make([]float64, len(completions))
	ends := make([]float64, len(completions))
	distances := make([]float64, len(completions))
	for i, c := range completions {
		waits[i] = c.WaitTime
		services[i] = c.ServiceTime()
		ends[i] = c.CompletionTime
		distances[i] = float64(c.Distance)
		summary.TotalDistance += c.Distance
	}

	summary.Makespan = floats.Max(ends)
	summary.MeanWait = stat.Mean(waits, nil)
	summary.MaxWait = floats.Max(waits)
	summary.MeanService = stat.Mean(services, nil)
	summary.MeanDistance = stat.Mean(distances, nil)

	sort.Float64s(waits)
	summary.P95Wait = stat.Quantile(0.95, stat.Empirical, waits, nil)

	return summary
}
