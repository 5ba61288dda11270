package engine

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"inferstat/adapters/stats/anova"
	"inferstat/adapters/stats/pearson"
	"inferstat/adapters/stats/ttest"
	"inferstat/domain/stats"
)

// AnalysisEngine orchestrates the statistical engines and offers a bounded
// asynchronous submit API so a responsive caller (an event loop, a request
// handler) never blocks on a computation. Each computation is a pure
// function of its inputs; the engine holds no shared mutable state.
type AnalysisEngine struct {
	sem         *semaphore.Weighted
	correlation *pearson.Analyzer
	anova       *anova.Engine
}

// NewAnalysisEngine creates an engine that runs at most maxConcurrent
// submitted computations at a time.
func NewAnalysisEngine(maxConcurrent int64) *AnalysisEngine {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &AnalysisEngine{
		sem:         semaphore.NewWeighted(maxConcurrent),
		correlation: pearson.NewAnalyzer(),
		anova:       anova.NewEngine(),
	}
}

// AnovaReport bundles the descriptive table, the ANOVA decomposition and
// the conditional post-hoc comparison into one renderable record.
// PostHoc is nil unless the omnibus test is significant at the fixed
// 0.05 family screen.
type AnovaReport struct {
	Groups  []stats.GroupStat `json:"groups"`
	Total   stats.GroupStat   `json:"total"`
	Anova   stats.AnovaResult `json:"anova"`
	PostHoc []stats.TukeyPair `json:"post_hoc,omitempty"`
}

// RunAnova computes descriptives, the one-way decomposition, and - only
// when the omnibus p-value clears the fixed 0.05 screen - the Tukey HSD
// pairwise table.
func (e *AnalysisEngine) RunAnova(ctx context.Context, groups stats.GroupSet) (*AnovaReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, total, err := e.anova.Descriptives(groups)
	if err != nil {
		return nil, err
	}
	result, err := e.anova.Compute(groups)
	if err != nil {
		return nil, err
	}

	report := &AnovaReport{Groups: rows, Total: total, Anova: result}
	if result.PValue < anova.FamilyAlpha {
		pairs, err := e.anova.PostHoc(groups, anova.FamilyAlpha)
		if err != nil {
			return nil, err
		}
		report.PostHoc = pairs
	}
	return report, nil
}

// RunCorrelationMatrix analyzes every unordered column pair, silently
// skipping pairs that fail validation.
func (e *AnalysisEngine) RunCorrelationMatrix(ctx context.Context, cols stats.Columns, alpha float64, tail stats.TailMode) ([]stats.CorrelationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.correlation.AllPairs(cols, alpha, tail)
}

// RunCorrelation analyzes a single pair of series.
func (e *AnalysisEngine) RunCorrelation(ctx context.Context, x, y []float64, alpha float64, tail stats.TailMode) (stats.CorrelationResult, error) {
	if err := ctx.Err(); err != nil {
		return stats.CorrelationResult{}, err
	}
	return e.correlation.Analyze(x, y, alpha, tail)
}

// RunCriticalValue computes the Pearson r critical threshold.
func (e *AnalysisEngine) RunCriticalValue(ctx context.Context, n int, alpha float64, tail stats.TailMode) (stats.CriticalValueResult, error) {
	if err := ctx.Err(); err != nil {
		return stats.CriticalValueResult{}, err
	}
	return pearson.ComputeCritical(n, alpha, tail)
}

// RunWelch computes Welch's independent two-sample t-test.
func (e *AnalysisEngine) RunWelch(ctx context.Context, sampleA, sampleB []float64) (stats.WelchResult, error) {
	if err := ctx.Err(); err != nil {
		return stats.WelchResult{}, err
	}
	return ttest.Compute(sampleA, sampleB)
}

// Outcome is the single message delivered for a submitted job. Payload
// holds the operation's result record when Err is nil.
type Outcome struct {
	JobID   string
	Payload interface{}
	Err     error
}

// submit runs fn on a worker goroutine bounded by the engine's semaphore
// and delivers exactly one Outcome on the returned buffered channel, so
// the caller never blocks and the worker never leaks. ctx cancellation is
// honored while the job waits for admission.
func (e *AnalysisEngine) submit(ctx context.Context, fn func() (interface{}, error)) <-chan Outcome {
	id := uuid.NewString()
	out := make(chan Outcome, 1)
	go func() {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			out <- Outcome{JobID: id, Err: err}
			return
		}
		defer e.sem.Release(1)
		payload, err := fn()
		out <- Outcome{JobID: id, Payload: payload, Err: err}
	}()
	return out
}

// SubmitAnova runs RunAnova off the caller's goroutine. The Payload of the
// delivered Outcome is a *AnovaReport.
func (e *AnalysisEngine) SubmitAnova(ctx context.Context, groups stats.GroupSet) <-chan Outcome {
	return e.submit(ctx, func() (interface{}, error) {
		return e.RunAnova(ctx, groups)
	})
}

// SubmitCorrelationMatrix runs RunCorrelationMatrix off the caller's
// goroutine. The Payload is a []stats.CorrelationResult.
func (e *AnalysisEngine) SubmitCorrelationMatrix(ctx context.Context, cols stats.Columns, alpha float64, tail stats.TailMode) <-chan Outcome {
	return e.submit(ctx, func() (interface{}, error) {
		return e.RunCorrelationMatrix(ctx, cols, alpha, tail)
	})
}

// SubmitWelch runs RunWelch off the caller's goroutine. The Payload is a
// stats.WelchResult.
func (e *AnalysisEngine) SubmitWelch(ctx context.Context, sampleA, sampleB []float64) <-chan Outcome {
	return e.submit(ctx, func() (interface{}, error) {
		return e.RunWelch(ctx, sampleA, sampleB)
	})
}
