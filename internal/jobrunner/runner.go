// Package jobrunner runs background jobs at a fixed period.
package jobrunner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidPeriod is returned for a non-positive period.
var ErrInvalidPeriod = errors.New("schedule period must be greater than zero")

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// Runner runs a job immediately and then once per period.
//
// Runs never overlap: a run that takes longer than the period delays the
// next one. Errors and panics of a run are logged and don't stop the runner.
type Runner struct {
	name   string
	period time.Duration
	job    Job
	logger zerolog.Logger
}

// New returns a runner for job.
func New(name string, period time.Duration, job Job, logger zerolog.Logger) (*Runner, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}

	return &Runner{
		name:   name,
		period: period,
		job:    job,
		logger: logger.With().Str("job", name).Logger(),
	}, nil
}

// Run blocks until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info().Dur("period", r.period).Msg("job runner started")

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		r.runOnce(ctx)

		select {
		case <-ctx.Done():
			r.logger.Info().Msg("job runner stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Msg("job panicked")
		}
	}()

	if err := r.job(ctx); err != nil && ctx.Err() == nil {
		r.logger.Error().Err(err).Msg("job failed")
	}
}
