package ttest

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"inferstat/domain/core"
	"inferstat/domain/stats"
	"inferstat/internal/distributions"
)

// verdictAlpha is the significance level the original workflow hardcodes
// for the reported conclusion. A fixed policy, not a parameter.
const verdictAlpha = 0.05

// Compute runs Welch's independent two-sample t-test, which does not
// assume equal variances:
//
//	t  = (mean1 - mean2) / sqrt(var1/n1 + var2/n2)
//	df = (var1/n1 + var2/n2)^2 /
//	     ((var1/n1)^2/(n1-1) + (var2/n2)^2/(n2-1))
//
// df is the Welch-Satterthwaite approximation and is generally
// non-integer; the two-sided p-value uses the t-distribution at that
// continuous df.
func Compute(sampleA, sampleB []float64) (stats.WelchResult, error) {
	if len(sampleA) < 2 {
		return stats.WelchResult{}, core.NewInvalidSampleSizeError("t-test group 1", 2, len(sampleA))
	}
	if len(sampleB) < 2 {
		return stats.WelchResult{}, core.NewInvalidSampleSizeError("t-test group 2", 2, len(sampleB))
	}

	mean1, err := mstats.Mean(sampleA)
	if err != nil {
		return stats.WelchResult{}, core.NewDegenerateInputError(err.Error())
	}
	mean2, err := mstats.Mean(sampleB)
	if err != nil {
		return stats.WelchResult{}, core.NewDegenerateInputError(err.Error())
	}
	var1, err := mstats.SampleVariance(sampleA)
	if err != nil {
		return stats.WelchResult{}, core.NewDegenerateInputError(err.Error())
	}
	var2, err := mstats.SampleVariance(sampleB)
	if err != nil {
		return stats.WelchResult{}, core.NewDegenerateInputError(err.Error())
	}

	n1 := float64(len(sampleA))
	n2 := float64(len(sampleB))

	seSquared := var1/n1 + var2/n2
	if seSquared == 0 {
		return stats.WelchResult{}, core.NewDegenerateInputError("both samples have zero variance")
	}

	t := (mean1 - mean2) / math.Sqrt(seSquared)
	df := seSquared * seSquared /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))
	p := distributions.TTestPValue(t, df)

	return stats.WelchResult{
		Mean1:       mean1,
		Mean2:       mean2,
		N1:          len(sampleA),
		N2:          len(sampleB),
		TStatistic:  t,
		DF:          df,
		PValue:      p,
		Significant: p <= verdictAlpha,
	}, nil
}
