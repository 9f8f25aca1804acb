// Package diagnostics exports the r1cs accumulator's Tag/AddCounter
// instrumentation as a pprof profile (so standard pprof tooling can inspect
// constraint/variable growth between named checkpoints) and defines the
// progress/cancellation collaborator spec §5 describes for long-running
// backend passes.
package diagnostics

import (
	"time"

	"github.com/google/pprof/profile"

	"github.com/jancarlsson/snarkfront/r1cs"
)

// ExportCounters converts a System's recorded Counters into a pprof
// profile.Profile, one sample per Counter with "constraints" and
// "variables" as its two value types.
func ExportCounters(counters []r1cs.Counter) *profile.Profile {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "constraints", Unit: "count"},
			{Type: "variables", Unit: "count"},
		},
		TimeNanos: time.Now().UnixNano(),
	}

	var nextID uint64 = 1
	locFor := func(name string) *profile.Location {
		fn := &profile.Function{ID: nextID, Name: name}
		nextID++
		p.Function = append(p.Function, fn)

		loc := &profile.Location{ID: nextID, Line: []profile.Line{{Function: fn}}}
		nextID++
		p.Location = append(p.Location, loc)
		return loc
	}

	for _, c := range counters {
		loc := locFor(c.From + " -> " + c.To)
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(c.NbConstraints), int64(c.NbVariables)},
		})
	}
	return p
}
