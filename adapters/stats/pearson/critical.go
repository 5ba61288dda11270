package pearson

import (
	"math"

	"inferstat/domain/core"
	"inferstat/domain/stats"
	"inferstat/internal/distributions"
)

// ComputeCritical converts a sample size, significance level and tail mode
// into the critical threshold for Pearson's r.
//
// df = n-2 because the underlying regression estimates two parameters.
// r_crit = sqrt(t^2 / (t^2 + df)) is the algebraic inverse of
// t = r*sqrt(df)/sqrt(1-r^2), so a correlation is significant exactly when
// |r| exceeds the returned RCritical.
func ComputeCritical(n int, alpha float64, tail stats.TailMode) (stats.CriticalValueResult, error) {
	if n < 3 {
		return stats.CriticalValueResult{}, core.NewInvalidSampleSizeError("pearson critical value", 3, n)
	}
	if alpha <= 0 || alpha >= 1 {
		return stats.CriticalValueResult{}, core.NewInvalidAlphaError(alpha)
	}
	if !tail.Valid() {
		return stats.CriticalValueResult{}, core.NewValidationError("tail mode", string(tail)+" is not a supported tail mode")
	}

	df := n - 2

	mass := 1 - alpha/2
	if tail == stats.OneTailed {
		mass = 1 - alpha
	}

	tCrit, err := distributions.CriticalT(mass, float64(df))
	if err != nil {
		return stats.CriticalValueResult{}, err
	}

	rCrit := math.Sqrt(tCrit * tCrit / (tCrit*tCrit + float64(df)))

	return stats.CriticalValueResult{
		SampleSize:       n,
		Alpha:            alpha,
		Tail:             tail,
		DegreesOfFreedom: df,
		TCritical:        tCrit,
		RCritical:        rCrit,
	}, nil
}
