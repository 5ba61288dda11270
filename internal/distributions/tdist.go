package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"inferstat/domain/core"
)

// CriticalT returns the value x with P(T <= x) = p for Student's t with the
// given degrees of freedom. df may be non-integer (Welch's approximation
// produces fractional df).
func CriticalT(p float64, df float64) (float64, error) {
	if df <= 0 {
		return 0, core.NewDomainError("degrees of freedom", df)
	}
	if p <= 0 || p >= 1 {
		return 0, core.NewDomainError("probability mass", p)
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(p), nil
}

// TCDF returns P(T <= x) for Student's t with df degrees of freedom.
func TCDF(x, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.CDF(x)
}

// TTestPValue returns the two-sided tail probability of |t| under Student's
// t with df degrees of freedom.
func TTestPValue(t, df float64) float64 {
	if df <= 0 {
		return 1.0
	}
	p := 2 * (1 - TCDF(math.Abs(t), df))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FSurvival returns P(F > f) for the F-distribution with (d1, d2) degrees
// of freedom. Used for the one-way ANOVA p-value.
func FSurvival(f, d1, d2 float64) float64 {
	if d1 <= 0 || d2 <= 0 {
		return 1.0
	}
	if f <= 0 {
		return 1.0
	}
	fDist := distuv.F{D1: d1, D2: d2}
	return 1 - fDist.CDF(f)
}
