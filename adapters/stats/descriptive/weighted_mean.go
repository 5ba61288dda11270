package descriptive

import (
	"inferstat/domain/core"
	"inferstat/domain/stats"
)

// RatingFrequency is one rating level and the number of respondents who
// chose it, e.g. a 4-point Likert item.
type RatingFrequency struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// WeightedMean computes the frequency-weighted mean of a rating scale:
// sum(rating*count) / sum(count). Fails when there are no respondents or
// a count is negative.
func WeightedMean(freqs []RatingFrequency) (stats.WeightedMeanResult, error) {
	weightedSum := 0.0
	total := 0
	for _, f := range freqs {
		if f.Count < 0 {
			return stats.WeightedMeanResult{}, core.NewValidationError("rating frequency", "negative count")
		}
		weightedSum += f.Rating * float64(f.Count)
		total += f.Count
	}
	if total == 0 {
		return stats.WeightedMeanResult{}, core.NewDegenerateInputError("no respondents, weighted mean undefined")
	}
	return stats.WeightedMeanResult{
		WeightedSum: weightedSum,
		TotalCount:  total,
		Mean:        weightedSum / float64(total),
	}, nil
}
