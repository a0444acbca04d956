// Package report summarizes phi results for inspection and export.
package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"gophi/domain/phi"
)

// ConstellationSummary is the distribution of small phi across a
// constellation's concepts.
type ConstellationSummary struct {
	Count  int     `json:"count"`
	SumPhi float64 `json:"sum_phi"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes summary statistics over a constellation's phi
// values. An empty constellation yields the zero summary.
func Summarize(c phi.Constellation) (ConstellationSummary, error) {
	summary := ConstellationSummary{Count: len(c)}
	if len(c) == 0 {
		return summary, nil
	}

	phis := c.Phis()

	sum, err := stats.Sum(phis)
	if err != nil {
		return summary, err
	}
	mean, err := stats.Mean(phis)
	if err != nil {
		return summary, err
	}
	median, err := stats.Median(phis)
	if err != nil {
		return summary, err
	}
	stdDev, err := stats.StandardDeviation(phis)
	if err != nil {
		return summary, err
	}
	min, err := stats.Min(phis)
	if err != nil {
		return summary, err
	}
	max, err := stats.Max(phis)
	if err != nil {
		return summary, err
	}

	summary.SumPhi = sum
	summary.Mean = mean
	summary.Median = median
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	return summary, nil
}

// BigMipReport pairs a subsystem-level result with the phi distributions
// of both constellations.
type BigMipReport struct {
	Phi           float64              `json:"phi"`
	Reducible     bool                 `json:"reducible"`
	Cut           string               `json:"cut"`
	Unpartitioned ConstellationSummary `json:"unpartitioned"`
	Partitioned   ConstellationSummary `json:"partitioned"`
}

// Report builds a BigMipReport from a computed BigMip.
func Report(mip *phi.BigMip) (BigMipReport, error) {
	unpartitioned, err := Summarize(mip.UnpartitionedConstellation())
	if err != nil {
		return BigMipReport{}, fmt.Errorf("unpartitioned constellation: %w", err)
	}
	partitioned, err := Summarize(mip.PartitionedConstellation())
	if err != nil {
		return BigMipReport{}, fmt.Errorf("partitioned constellation: %w", err)
	}
	return BigMipReport{
		Phi:           mip.Phi(),
		Reducible:     mip.IsReducible(),
		Cut:           fmt.Sprintf("%v", mip.Cut()),
		Unpartitioned: unpartitioned,
		Partitioned:   partitioned,
	}, nil
}
