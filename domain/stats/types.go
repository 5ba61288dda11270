package stats

// TailMode selects how alpha is split across the rejection regions of a test.
type TailMode string

const (
	TwoTailed TailMode = "two-tailed"
	OneTailed TailMode = "one-tailed"
)

// Valid reports whether the tail mode is one of the supported values.
func (m TailMode) Valid() bool {
	return m == TwoTailed || m == OneTailed
}

// Group is a labeled sample of observations. Label order across a GroupSet
// is meaningful: reports and post-hoc pairs follow first appearance.
type Group struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// GroupSet is an ordered collection of labeled samples for a one-way design.
type GroupSet []Group

// TotalObservations returns the pooled observation count across all groups.
func (gs GroupSet) TotalObservations() int {
	n := 0
	for _, g := range gs {
		n += len(g.Values)
	}
	return n
}

// Column is a named numeric series. A NaN entry marks a missing observation.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Columns is an ordered set of named series. Insertion order drives the
// pair ordering of bulk correlation output.
type Columns []Column

// CriticalValueResult is the threshold record for Pearson's r significance.
// Stateless and recomputed on every call.
type CriticalValueResult struct {
	SampleSize       int      `json:"sample_size"`
	Alpha            float64  `json:"alpha"`
	Tail             TailMode `json:"tail_mode"`
	DegreesOfFreedom int      `json:"degrees_of_freedom"`
	TCritical        float64  `json:"t_critical"`
	RCritical        float64  `json:"r_critical"`
}

// CorrelationResult reports Pearson's r for one pair of series together
// with the critical threshold it was judged against.
// Invariant: IsSignificant == (|RValue| > Critical.RCritical).
type CorrelationResult struct {
	ColumnX       string              `json:"column_x,omitempty"`
	ColumnY       string              `json:"column_y,omitempty"`
	RValue        float64             `json:"r_value"`
	PValue        float64             `json:"p_value"`
	SampleSize    int                 `json:"sample_size"`
	Critical      CriticalValueResult `json:"critical"`
	IsSignificant bool                `json:"is_significant"`
}

// AnovaResult is the one-way ANOVA decomposition.
// Invariant: SSTotal == SSBetween + SSWithin exactly, because SSWithin is
// derived from the other two rather than summed independently.
type AnovaResult struct {
	SSBetween  float64 `json:"ss_between"`
	SSWithin   float64 `json:"ss_within"`
	SSTotal    float64 `json:"ss_total"`
	DFBetween  int     `json:"df_between"`
	DFWithin   int     `json:"df_within"`
	MSBetween  float64 `json:"ms_between"`
	MSWithin   float64 `json:"ms_within"`
	FStatistic float64 `json:"f_statistic"`
	PValue     float64 `json:"p_value"`
}

// GroupStat is the descriptive row reported alongside an ANOVA table.
// StdDev is the sample standard deviation (Bessel-corrected).
type GroupStat struct {
	Label  string  `json:"label"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// TukeyPair is one pairwise comparison from the Tukey HSD post-hoc
// procedure. RejectNull is true when the confidence interval for the
// mean difference excludes zero.
type TukeyPair struct {
	GroupA         string  `json:"group_a"`
	GroupB         string  `json:"group_b"`
	MeanDifference float64 `json:"mean_difference"`
	LowerCI        float64 `json:"lower_ci"`
	UpperCI        float64 `json:"upper_ci"`
	RejectNull     bool    `json:"reject_null"`
}

// WelchResult is the unequal-variance two-sample t-test record. DF is the
// Welch-Satterthwaite approximation and is generally non-integer.
// Significant is judged at the fixed 0.05 level.
type WelchResult struct {
	Mean1       float64 `json:"mean1"`
	Mean2       float64 `json:"mean2"`
	N1          int     `json:"n1"`
	N2          int     `json:"n2"`
	TStatistic  float64 `json:"t_statistic"`
	DF          float64 `json:"df"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// WeightedMeanResult is the rating-frequency weighted mean record.
type WeightedMeanResult struct {
	WeightedSum float64 `json:"weighted_sum"`
	TotalCount  int     `json:"total_count"`
	Mean        float64 `json:"mean"`
}
