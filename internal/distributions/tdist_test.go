package distributions

import (
	"math"
	"testing"

	"inferstat/domain/core"
)

func TestCriticalT_KnownValues(t *testing.T) {
	cases := []struct {
		p    float64
		df   float64
		want float64
	}{
		{0.975, 97, 1.98472},  // two-tailed alpha=0.05, n=99
		{0.975, 58, 2.00172},  // two-tailed alpha=0.05, n=60
		{0.975, 8, 2.30600},   // small sample
		{0.95, 10, 1.81246},   // one-tailed alpha=0.05
		{0.995, 12, 3.05454},  // two-tailed alpha=0.01
		{0.975, 1000, 1.96234}, // near-normal regime
	}
	for _, c := range cases {
		got, err := CriticalT(c.p, c.df)
		if err != nil {
			t.Fatalf("CriticalT(%v, %v): %v", c.p, c.df, err)
		}
		if math.Abs(got-c.want) > 5e-4 {
			t.Errorf("CriticalT(%v, %v) = %.5f, want %.5f", c.p, c.df, got, c.want)
		}
	}
}

func TestCriticalT_ContinuousDF(t *testing.T) {
	// Welch's approximation yields fractional df; the quantile must
	// interpolate monotonically between the neighbouring integer dfs.
	lo, err := CriticalT(0.975, 7)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := CriticalT(0.975, 7.4)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := CriticalT(0.975, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !(hi < mid && mid < lo) {
		t.Errorf("expected t(df=8)=%.5f < t(df=7.4)=%.5f < t(df=7)=%.5f", hi, mid, lo)
	}
}

func TestCriticalT_DomainErrors(t *testing.T) {
	if _, err := CriticalT(0.975, 0); !core.IsInputError(err) && err == nil {
		t.Error("expected error for df=0")
	}
	if _, err := CriticalT(0.975, -3); err == nil {
		t.Error("expected error for negative df")
	}
	if _, err := CriticalT(1.0, 10); err == nil {
		t.Error("expected error for p=1")
	}
	if _, err := CriticalT(0, 10); err == nil {
		t.Error("expected error for p=0")
	}
}

func TestTTestPValue_TwoSided(t *testing.T) {
	// t=2.0, df=8 is the textbook 0.0807 two-sided case.
	p := TTestPValue(2.0, 8)
	if math.Abs(p-0.0807) > 1e-3 {
		t.Errorf("TTestPValue(2, 8) = %.4f, want 0.0807", p)
	}

	// Symmetric in the sign of t.
	if TTestPValue(-2.0, 8) != p {
		t.Error("two-sided p-value must not depend on the sign of t")
	}

	// t=0 carries no evidence.
	if got := TTestPValue(0, 8); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("TTestPValue(0, 8) = %v, want 1", got)
	}
}

func TestFSurvival_KnownValues(t *testing.T) {
	// F(2,12) upper 5% critical value is 3.8853: survival there is 0.05.
	p := FSurvival(3.8853, 2, 12)
	if math.Abs(p-0.05) > 5e-4 {
		t.Errorf("FSurvival(3.8853, 2, 12) = %.5f, want 0.05", p)
	}

	// Closed form for d1=2: P(F > f) = (1 + 2f/d2)^(-d2/2).
	f := 7.85745
	want := math.Pow(1+2*f/12, -6)
	if got := FSurvival(f, 2, 12); math.Abs(got-want) > 1e-6 {
		t.Errorf("FSurvival(%.5f, 2, 12) = %.6f, want %.6f", f, got, want)
	}

	if FSurvival(1.0, 0, 12) != 1.0 {
		t.Error("non-positive numerator df must report p=1")
	}
}
