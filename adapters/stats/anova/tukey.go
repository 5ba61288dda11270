package anova

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"inferstat/domain/core"
	"inferstat/domain/stats"
	"inferstat/internal/distributions"
)

// FamilyAlpha is the family-wise error rate at which the post-hoc step is
// screened and run. The source workflow hardcodes 0.05 for this decision
// even where the omnibus alpha could in principle differ; kept fixed
// rather than generalized.
const FamilyAlpha = 0.05

// PostHoc runs Tukey's HSD pairwise comparison over all unordered group
// pairs, ordered by first appearance of group A then group B. It is meant
// to be invoked only after a significant omnibus F-test.
//
// The interval uses the Tukey-Kramer standard error
// sqrt(MS_w/2 * (1/n_a + 1/n_b)), which reduces to the classic
// q*sqrt(MS_w/n) half-width for equal group sizes. The critical q comes
// from the studentized range distribution with k groups and N-k error
// degrees of freedom at the given family-wise alpha.
func (e *Engine) PostHoc(groups stats.GroupSet, alpha float64) ([]stats.TukeyPair, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, core.NewInvalidAlphaError(alpha)
	}

	result, err := e.Compute(groups)
	if err != nil {
		return nil, err
	}

	q, err := distributions.StudentizedRangeQuantile(1-alpha, len(groups), float64(result.DFWithin))
	if err != nil {
		return nil, err
	}

	means := make([]float64, len(groups))
	for i, g := range groups {
		m, err := mstats.Mean(g.Values)
		if err != nil {
			return nil, core.NewDegenerateInputError(err.Error())
		}
		means[i] = m
	}

	pairs := make([]stats.TukeyPair, 0, len(groups)*(len(groups)-1)/2)
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			na := float64(len(groups[i].Values))
			nb := float64(len(groups[j].Values))
			se := math.Sqrt(result.MSWithin / 2 * (1/na + 1/nb))
			diff := means[j] - means[i]
			halfWidth := q * se
			pairs = append(pairs, stats.TukeyPair{
				GroupA:         groups[i].Label,
				GroupB:         groups[j].Label,
				MeanDifference: diff,
				LowerCI:        diff - halfWidth,
				UpperCI:        diff + halfWidth,
				RejectNull:     math.Abs(diff) > halfWidth,
			})
		}
	}
	return pairs, nil
}
