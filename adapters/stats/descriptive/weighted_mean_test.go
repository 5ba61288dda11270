package descriptive

import (
	"errors"
	"math"
	"testing"

	"inferstat/domain/core"
)

func TestWeightedMean_LikertScale(t *testing.T) {
	// 4-point scale: (4*10 + 3*20 + 2*5 + 1*5) / 40 = 115/40 = 2.875.
	res, err := WeightedMean([]RatingFrequency{
		{Rating: 4, Count: 10},
		{Rating: 3, Count: 20},
		{Rating: 2, Count: 5},
		{Rating: 1, Count: 5},
	})
	if err != nil {
		t.Fatalf("WeightedMean: %v", err)
	}
	if res.TotalCount != 40 {
		t.Errorf("total = %d, want 40", res.TotalCount)
	}
	if math.Abs(res.WeightedSum-115) > 1e-12 {
		t.Errorf("weighted sum = %v, want 115", res.WeightedSum)
	}
	if math.Abs(res.Mean-2.875) > 1e-12 {
		t.Errorf("mean = %v, want 2.875", res.Mean)
	}
}

func TestWeightedMean_NoRespondents(t *testing.T) {
	_, err := WeightedMean([]RatingFrequency{
		{Rating: 4, Count: 0},
		{Rating: 3, Count: 0},
	})
	if !errors.Is(err, core.ErrDegenerateInput) {
		t.Errorf("got %v, want ErrDegenerateInput", err)
	}

	_, err = WeightedMean(nil)
	if !errors.Is(err, core.ErrDegenerateInput) {
		t.Errorf("empty input: got %v, want ErrDegenerateInput", err)
	}
}

func TestWeightedMean_NegativeCount(t *testing.T) {
	_, err := WeightedMean([]RatingFrequency{{Rating: 3, Count: -1}})
	if !errors.Is(err, core.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}
