package pearson

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"inferstat/domain/core"
	"inferstat/domain/stats"
	"inferstat/internal/distributions"
)

// Analyzer computes Pearson product-moment correlations and judges them
// against the critical-value threshold.
type Analyzer struct{}

// NewAnalyzer creates a correlation analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// pairedComplete removes every index at which either series is missing
// (NaN). An index missing in one series removes the observation from both.
func pairedComplete(x, y []float64) ([]float64, []float64) {
	px := make([]float64, 0, len(x))
	py := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		px = append(px, x[i])
		py = append(py, y[i])
	}
	return px, py
}

// ValidatePair checks that two series are suitable for correlation:
// equal raw length, at least 3 complete pairs, and non-zero variance on
// both sides after paired removal of missing entries.
func (a *Analyzer) ValidatePair(x, y []float64) error {
	if len(x) != len(y) {
		return core.NewValidationError("series pair", "series lengths differ")
	}

	px, py := pairedComplete(x, y)
	if len(px) < 3 {
		return core.NewInvalidSampleSizeError("correlation", 3, len(px))
	}

	varX, err := mstats.SampleVariance(px)
	if err != nil {
		return core.NewValidationError("series x", err.Error())
	}
	varY, err := mstats.SampleVariance(py)
	if err != nil {
		return core.NewValidationError("series y", err.Error())
	}
	if varX == 0 {
		return core.NewDegenerateInputError("series x has zero variance (all values equal)")
	}
	if varY == 0 {
		return core.NewDegenerateInputError("series y has zero variance (all values equal)")
	}
	return nil
}

// Compute returns Pearson's r, its two-sided p-value under the null of zero
// correlation, and the complete-pair sample size. The p-value uses the t
// transform t = r*sqrt(df)/sqrt(1-r^2) with df = n-2.
func (a *Analyzer) Compute(x, y []float64) (rValue, pValue float64, n int, err error) {
	if err := a.ValidatePair(x, y); err != nil {
		return 0, 0, 0, err
	}

	px, py := pairedComplete(x, y)
	n = len(px)

	rValue, err = mstats.Pearson(px, py)
	if err != nil {
		return 0, 0, 0, core.NewValidationError("correlation", err.Error())
	}

	df := float64(n - 2)
	denom := 1 - rValue*rValue
	if denom <= 0 {
		// Perfect correlation: the t statistic diverges.
		return rValue, 0, n, nil
	}
	t := rValue * math.Sqrt(df/denom)
	pValue = distributions.TTestPValue(t, df)
	return rValue, pValue, n, nil
}

// Analyze runs validation, the correlation computation, and the critical
// threshold in one pass. IsSignificant holds exactly when |r| exceeds the
// critical r for the requested alpha and tail mode.
func (a *Analyzer) Analyze(x, y []float64, alpha float64, tail stats.TailMode) (stats.CorrelationResult, error) {
	rValue, pValue, n, err := a.Compute(x, y)
	if err != nil {
		return stats.CorrelationResult{}, err
	}

	critical, err := ComputeCritical(n, alpha, tail)
	if err != nil {
		return stats.CorrelationResult{}, err
	}

	return stats.CorrelationResult{
		RValue:        rValue,
		PValue:        pValue,
		SampleSize:    n,
		Critical:      critical,
		IsSignificant: math.Abs(rValue) > critical.RCritical,
	}, nil
}

// AllPairs analyzes every unordered pair of columns in insertion order.
// The shared parameters (alpha, tail) are validated up front and fail the
// whole call. A pair that fails its own validation is skipped and omitted
// from the output rather than surfaced as an error: bulk analysis is
// expected to proceed over imperfect datasets (constant columns, short
// series), and that skip is deliberate behavior, not a swallowed failure.
func (a *Analyzer) AllPairs(cols stats.Columns, alpha float64, tail stats.TailMode) ([]stats.CorrelationResult, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, core.NewInvalidAlphaError(alpha)
	}
	if !tail.Valid() {
		return nil, core.NewValidationError("tail mode", string(tail)+" is not a supported tail mode")
	}

	results := make([]stats.CorrelationResult, 0)
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			res, err := a.Analyze(cols[i].Values, cols[j].Values, alpha, tail)
			if err != nil {
				continue
			}
			res.ColumnX = cols[i].Name
			res.ColumnY = cols[j].Name
			results = append(results, res)
		}
	}
	return results, nil
}
