package diagnostics

import "sync/atomic"

// Progress is the collaborator spec §5 describes for long-running backend
// passes (key generation, proof generation): "accept a progress-callback
// collaborator with a major/minor tick interface; cancellation is
// advisory (the callback may set a flag; the core checks it between major
// steps)." The circuit-building core itself never calls this — it runs to
// completion with no cancellation point — it exists for the proving-backend
// boundary this module's callers sit behind.
type Progress interface {
	// Major reports entry into step i of n top-level phases (e.g. "query A",
	// "query B", "query C" in a key-generation pass).
	Major(step, total int, name string)
	// Minor reports fine-grained progress within the current major step,
	// e.g. "n of total exponentiations done".
	Minor(done, total int)
	// Cancelled is polled between major steps; once true the caller aborts
	// at the next checkpoint.
	Cancelled() bool
}

// NoProgress is a Progress that reports nothing and is never cancelled.
type NoProgress struct{}

func (NoProgress) Major(step, total int, name string) {}
func (NoProgress) Minor(done, total int)               {}
func (NoProgress) Cancelled() bool                     { return false }

// FlagProgress is a minimal Progress backed by an atomic cancellation
// flag, set from any goroutine via Cancel.
type FlagProgress struct {
	cancelled atomic.Bool
	OnMajor   func(step, total int, name string)
	OnMinor   func(done, total int)
}

func (p *FlagProgress) Major(step, total int, name string) {
	if p.OnMajor != nil {
		p.OnMajor(step, total, name)
	}
}

func (p *FlagProgress) Minor(done, total int) {
	if p.OnMinor != nil {
		p.OnMinor(done, total)
	}
}

func (p *FlagProgress) Cancelled() bool { return p.cancelled.Load() }

// Cancel requests cancellation; the next major-step checkpoint observes it.
func (p *FlagProgress) Cancel() { p.cancelled.Store(true) }
