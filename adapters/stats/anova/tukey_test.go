package anova

import (
	"errors"
	"math"
	"testing"

	"inferstat/domain/core"
	"inferstat/domain/stats"
)

func TestPostHoc_CanonicalFixture(t *testing.T) {
	// q(0.95, 3, 12) = 3.7729, MS_within = 0.0822133, n = 5 per group:
	// half-width = 3.7729 * sqrt(0.0822133/5) = 0.48381.
	pairs, err := NewEngine().PostHoc(fixtureGroups(), FamilyAlpha)
	if err != nil {
		t.Fatalf("PostHoc: %v", err)
	}

	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}

	wantOrder := [][2]string{{"G1", "G2"}, {"G1", "G3"}, {"G2", "G3"}}
	wantDiff := []float64{-0.498, 0.2, 0.698}
	wantReject := []bool{true, false, true}

	for i, p := range pairs {
		if p.GroupA != wantOrder[i][0] || p.GroupB != wantOrder[i][1] {
			t.Errorf("pair %d = (%s, %s), want (%s, %s)", i, p.GroupA, p.GroupB, wantOrder[i][0], wantOrder[i][1])
		}
		if math.Abs(p.MeanDifference-wantDiff[i]) > 1e-9 {
			t.Errorf("pair %d diff = %v, want %v", i, p.MeanDifference, wantDiff[i])
		}
		if p.RejectNull != wantReject[i] {
			t.Errorf("pair %d reject = %v, want %v", i, p.RejectNull, wantReject[i])
		}

		halfWidth := (p.UpperCI - p.LowerCI) / 2
		if math.Abs(halfWidth-0.48381) > 5e-3 {
			t.Errorf("pair %d half-width = %.5f, want 0.48381", i, halfWidth)
		}
		center := (p.UpperCI + p.LowerCI) / 2
		if math.Abs(center-p.MeanDifference) > 1e-9 {
			t.Errorf("pair %d interval not centered on the difference", i)
		}

		// The reject flag must agree with the interval excluding zero.
		excludesZero := p.LowerCI > 0 || p.UpperCI < 0
		if p.RejectNull != excludesZero {
			t.Errorf("pair %d reject flag inconsistent with CI [%v, %v]", i, p.LowerCI, p.UpperCI)
		}
	}
}

func TestPostHoc_UnequalGroupSizes(t *testing.T) {
	groups := stats.GroupSet{
		{Label: "small", Values: []float64{1, 2, 1.5}},
		{Label: "large", Values: []float64{5, 6, 5.5, 6.5, 5.75, 6.25}},
	}
	pairs, err := NewEngine().PostHoc(groups, FamilyAlpha)
	if err != nil {
		t.Fatalf("PostHoc: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if !pairs[0].RejectNull {
		t.Error("clearly separated means must reject")
	}
	if pairs[0].MeanDifference <= 0 {
		t.Errorf("difference = %v, want mean(large) - mean(small) > 0", pairs[0].MeanDifference)
	}
}

// A very small family-wise alpha on 2 error df needs a critical q far
// beyond the usual tabulated range; the interval width must track it
// instead of capping out. Exact half-width here is
// sqrt(2)*t(0.99995, 2) * sqrt(MS_w/2) = 141.41 * 70.71 = 9999.5.
func TestPostHoc_TinyAlphaWidensInterval(t *testing.T) {
	groups := stats.GroupSet{
		{Label: "low", Values: []float64{1, 2}},
		{Label: "high", Values: []float64{100, 300}},
	}
	pairs, err := NewEngine().PostHoc(groups, 1e-4)
	if err != nil {
		t.Fatalf("PostHoc: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}

	halfWidth := (pairs[0].UpperCI - pairs[0].LowerCI) / 2
	if math.Abs(halfWidth-9999.5)/9999.5 > 1e-2 {
		t.Errorf("half-width = %.1f, want 9999.5", halfWidth)
	}
}

func TestPostHoc_Validation(t *testing.T) {
	_, err := NewEngine().PostHoc(fixtureGroups(), 0)
	if !errors.Is(err, core.ErrInvalidAlpha) {
		t.Errorf("alpha=0: got %v, want ErrInvalidAlpha", err)
	}

	_, err = NewEngine().PostHoc(stats.GroupSet{{Label: "one", Values: []float64{1, 2}}}, FamilyAlpha)
	if !errors.Is(err, core.ErrInvalidSampleSize) {
		t.Errorf("single group: got %v, want ErrInvalidSampleSize", err)
	}
}
