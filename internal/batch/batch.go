// Package batch analyzes several documents concurrently.
package batch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/analytics"
)

// DefaultConcurrency is used when no positive limit is given.
const DefaultConcurrency = 4

// AnalyzeFunc analyzes one input. It is called from several goroutines.
type AnalyzeFunc func(ctx context.Context, input string) (*analytics.Result, error)

// Outcome is the result of one input. Exactly one of Result and Err is set.
type Outcome struct {
	Input  string
	Result *analytics.Result
	Err    error
}

// Runner fans inputs out to an AnalyzeFunc.
type Runner struct {
	analyze     AnalyzeFunc
	concurrency int
	log         *logrus.Entry
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the maximum number of concurrent analyses.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets the batch logger.
func WithLogger(entry *logrus.Entry) Option {
	return func(r *Runner) {
		r.log = log.OrDiscard(entry)
	}
}

// New creates a Runner.
func New(analyze AnalyzeFunc, opts ...Option) *Runner {
	r := &Runner{
		analyze:     analyze,
		concurrency: DefaultConcurrency,
		log:         log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithField("component", "batch")
	return r
}

// Run analyzes every input and returns one Outcome per input in argument
// order. A failed input is recorded in its Outcome and does not stop the
// others. The returned error is non-nil only when ctx was cancelled.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Outcome, error) {
	start := time.Now()
	outcomes := make([]Outcome, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			outcomes[i].Input = input
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return err
			}

			res, err := r.analyze(ctx, input)
			if err != nil {
				r.log.WithFields(logrus.Fields{"input": input, "error": err}).Warn("analysis failed")
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Result = res
			return nil
		})
	}

	err := g.Wait()

	r.log.WithFields(logrus.Fields{
		"inputs":  len(inputs),
		"failed":  Failed(outcomes),
		"elapsed": time.Since(start),
	}).Debug("batch complete")

	return outcomes, err
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
