// Package taskpool realises spec §5's concurrency model at the boundary
// above the circuit-building core: "the public singleton is a per-task
// (thread-local) handle; each worker thread that builds a circuit owns an
// independent accumulator." The core itself (r1cs.System, circuit.Builder)
// is never safe for concurrent mutation by design, so this package's only
// job is handing each worker its own Builder and collecting results.
package taskpool

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Build is one independent circuit-construction job: it receives a fresh
// Builder and returns whatever result the caller wants to keep (a root
// digest, a proof request, or nil).
type Build func(b *circuit.Builder) (interface{}, error)

// BuildAll runs every job concurrently, each against its own Builder over
// the given field and config, and returns their results in the same order
// the jobs were given (spec §5: "constraints are appended in program
// order" — a guarantee that holds per-accumulator, not across the pool).
// A job error does not interrupt the other jobs (a Build receives no
// context); BuildAll returns the first error once every job has finished.
func BuildAll(ctx context.Context, zero field.Fr, cfg r1cs.Config, jobs []Build) ([]interface{}, error) {
	g, _ := errgroup.WithContext(ctx)
	results := make([]interface{}, len(jobs))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			b := circuit.New(zero, cfg)
			res, err := job(b)
			if err != nil {
				cfg.Logger.Error().Int("job", i).Err(err).Msg("taskpool: job failed")
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
