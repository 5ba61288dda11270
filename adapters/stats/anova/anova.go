package anova

import (
	mstats "github.com/montanaflynn/stats"

	"inferstat/domain/core"
	"inferstat/domain/stats"
	"inferstat/internal/distributions"
)

// Engine computes the one-way ANOVA decomposition and the descriptive
// statistics reported alongside it.
type Engine struct{}

// NewEngine creates an ANOVA engine.
func NewEngine() *Engine {
	return &Engine{}
}

// validate enforces the structural invariants of a one-way design:
// at least 2 groups, every group at least 2 observations.
func (e *Engine) validate(groups stats.GroupSet) error {
	if len(groups) < 2 {
		return core.NewInvalidSampleSizeError("one-way ANOVA", 2, len(groups))
	}
	for _, g := range groups {
		if len(g.Values) < 2 {
			return core.NewInvalidSampleSizeError("ANOVA group "+g.Label, 2, len(g.Values))
		}
	}
	return nil
}

// Compute performs the manual one-way decomposition:
//
//	SS_between = sum over groups of n_g * (mean_g - grand_mean)^2
//	SS_total   = sum over observations of (x - grand_mean)^2
//	SS_within  = SS_total - SS_between
//
// SS_within is derived rather than summed independently so the additive
// invariant SS_total = SS_between + SS_within holds exactly under this
// engine's own arithmetic. The p-value comes from the F survival function
// at (F, k-1, N-k).
func (e *Engine) Compute(groups stats.GroupSet) (stats.AnovaResult, error) {
	if err := e.validate(groups); err != nil {
		return stats.AnovaResult{}, err
	}

	k := len(groups)
	n := groups.TotalObservations()
	dfBetween := k - 1
	dfWithin := n - k
	if dfWithin <= 0 {
		return stats.AnovaResult{}, core.NewDegenerateInputError("too few observations for within-group degrees of freedom")
	}

	pooled := make([]float64, 0, n)
	for _, g := range groups {
		pooled = append(pooled, g.Values...)
	}
	grandMean, err := mstats.Mean(pooled)
	if err != nil {
		return stats.AnovaResult{}, core.NewDegenerateInputError(err.Error())
	}

	ssBetween := 0.0
	for _, g := range groups {
		m, err := mstats.Mean(g.Values)
		if err != nil {
			return stats.AnovaResult{}, core.NewDegenerateInputError(err.Error())
		}
		d := m - grandMean
		ssBetween += float64(len(g.Values)) * d * d
	}

	ssTotal := 0.0
	for _, x := range pooled {
		d := x - grandMean
		ssTotal += d * d
	}

	ssWithin := ssTotal - ssBetween

	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		return stats.AnovaResult{}, core.NewDegenerateInputError("zero within-group variance makes F undefined")
	}

	f := msBetween / msWithin

	return stats.AnovaResult{
		SSBetween:  ssBetween,
		SSWithin:   ssWithin,
		SSTotal:    ssTotal,
		DFBetween:  dfBetween,
		DFWithin:   dfWithin,
		MSBetween:  msBetween,
		MSWithin:   msWithin,
		FStatistic: f,
		PValue:     distributions.FSurvival(f, float64(dfBetween), float64(dfWithin)),
	}, nil
}

// Descriptives returns the per-group mean, Bessel-corrected standard
// deviation and count, plus the pooled total row that closes the table.
func (e *Engine) Descriptives(groups stats.GroupSet) ([]stats.GroupStat, stats.GroupStat, error) {
	if err := e.validate(groups); err != nil {
		return nil, stats.GroupStat{}, err
	}

	rows := make([]stats.GroupStat, 0, len(groups))
	pooled := make([]float64, 0, groups.TotalObservations())
	for _, g := range groups {
		mean, err := mstats.Mean(g.Values)
		if err != nil {
			return nil, stats.GroupStat{}, core.NewDegenerateInputError(err.Error())
		}
		sd, err := mstats.StandardDeviationSample(g.Values)
		if err != nil {
			return nil, stats.GroupStat{}, core.NewDegenerateInputError(err.Error())
		}
		rows = append(rows, stats.GroupStat{
			Label:  g.Label,
			N:      len(g.Values),
			Mean:   mean,
			StdDev: sd,
		})
		pooled = append(pooled, g.Values...)
	}

	totalMean, err := mstats.Mean(pooled)
	if err != nil {
		return nil, stats.GroupStat{}, core.NewDegenerateInputError(err.Error())
	}
	totalSD, err := mstats.StandardDeviationSample(pooled)
	if err != nil {
		return nil, stats.GroupStat{}, core.NewDegenerateInputError(err.Error())
	}

	total := stats.GroupStat{
		Label:  "Total",
		N:      len(pooled),
		Mean:   totalMean,
		StdDev: totalSD,
	}
	return rows, total, nil
}
