package r1cs

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/jancarlsson/snarkfront/field"
)

var bigOne = big.NewInt(1)

// CircuitError is raised (via panic) for the programmer errors System
// itself detects during circuit construction (spec §7 category 1), such as
// a public-input write after checkpoint, a booleanity constraint on a
// non-boolean constant, a missing witness or a misused ImperativeFold.
// Other checks (a variable used before Bless, an out-of-range shift) panic
// with a plain string, and Audit returns an unsatisfied constraint as an
// error. These are bugs in
// the circuit code, not user-facing errors, so they are not returned as a
// Go error — callers that want to convert them to an exit code recover()
// at the top of their own driver.
type CircuitError struct {
	Invariant string // e.g. "I1", "I3"; empty if not tied to a specific invariant
	Message   string
}

func (e *CircuitError) Error() string {
	if e.Invariant == "" {
		return "r1cs: " + e.Message
	}
	return fmt.Sprintf("r1cs: %s: %s", e.Invariant, e.Message)
}

func (s *System) fail(invariant, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.cfg.Logger.Error().Str("invariant", invariant).Msg(msg)
	panic(&CircuitError{Invariant: invariant, Message: msg})
}

// Config configures a System, in the spirit of the teacher's
// frontend.CompileConfig: capacity hints and a logger.
type Config struct {
	// Capacity is a hint for the initial constraint-slice allocation.
	Capacity int
	// IgnoreUnconstrained disables the unconstrained-input audit that
	// CheckUnconstrained would otherwise perform.
	IgnoreUnconstrained bool
	Logger              zerolog.Logger
}

// Tag marks a point in the constraint stream so AddCounter can measure
// growth between two tags (ported in spirit from the teacher's
// frontend.Tag/AddCounter instrumentation).
type Tag struct {
	Name           string
	VariableID     int
	ConstraintID   int
}

// Counter is one measured region between two Tags.
type Counter struct {
	From, To                 string
	NbVariables, NbConstraints int
}

// System is the per-task R1CS accumulator from spec §4.7: it owns the
// monotonically increasing variable-ID counter, the append-only
// constraint list, the witness map, and the public-input checkpoint.
type System struct {
	zero field.Fr
	pow  *field.PowersOf2
	cfg  Config

	nextID      int // next free variable ID; 0 is reserved for the identity wire
	checkpoint  int // -1 until CheckpointInput is called
	constraints []Constraint
	witness     map[int]field.Fr
	cowitness   map[int]string // decimal-string cowitness for big-int public inputs

	booleans map[int]bool // variable IDs already known boolean-constrained (I1 dedup)

	counters []Counter
}

// New creates an empty accumulator over the given field (identified by its
// zero element) with the given configuration.
func New(zero field.Fr, cfg Config) *System {
	return &System{
		zero:       zero,
		pow:        field.NewPowersOf2(zero),
		cfg:        cfg,
		nextID:     1,
		checkpoint: -1,
		witness:    make(map[int]field.Fr),
		cowitness:  make(map[int]string),
		booleans:   make(map[int]bool),
	}
}

// Reset clears all accumulator state (spec §4.7 reset()), dropping every
// constraint, witness entry and ID allocation.
func (s *System) Reset() {
	s.nextID = 1
	s.checkpoint = -1
	s.constraints = s.constraints[:0]
	s.witness = make(map[int]field.Fr)
	s.cowitness = make(map[int]string)
	s.booleans = make(map[int]bool)
	s.counters = nil
}

// CounterID returns the next free variable ID (spec §4.7 counterID()).
func (s *System) CounterID() int { return s.nextID }

// NbConstraints reports how many constraints have been appended so far.
func (s *System) NbConstraints() int { return len(s.constraints) }

// Constraints exposes the append-only constraint sequence for a backend
// or the format package to consume. The returned slice must not be
// mutated by the caller.
func (s *System) Constraints() []Constraint { return s.constraints }

// Powers exposes the lazily-extended power-of-two cache (spec §4.1).
func (s *System) Powers() *field.PowersOf2 { return s.pow }

// Zero returns the field's additive identity, useful for callers that
// need a concrete Fr value without threading one through separately.
func (s *System) Zero() field.Fr { return s.zero }

// CreateTerm allocates a fresh term. If isVariable, a new variable ID is
// minted and W(id) := value is recorded; otherwise the term is a
// compile-time constant c·x0 and no witness entry is created (spec §4.7
// createTerm).
func (s *System) CreateTerm(value field.Fr, isVariable bool) Term {
	if !isVariable {
		return Term{Coeff: value, ID: 0}
	}
	id := s.nextID
	s.nextID++
	s.witness[id] = value
	return Term{Coeff: s.zero.One(), ID: id}
}

// CreateConstant is a specialisation of CreateTerm for compile-time
// constants.
func (s *System) CreateConstant(value field.Fr) Term {
	return s.CreateTerm(value, false)
}

// CreateVariable is a specialisation of CreateTerm for variables. If
// public, the new ID must still be below the prefix established by
// CheckpointInput — attempting to mark a variable public after checkpoint
// is a programmer error (spec §9 Open Question 1, resolved in DESIGN.md).
func (s *System) CreateVariable(value field.Fr, public bool) Term {
	if public && s.checkpoint >= 0 {
		s.fail("I3", "CreateVariable(public=true) called after CheckpointInput; the public prefix is frozen at %d variables", s.checkpoint)
	}
	return s.CreateTerm(value, true)
}

// WitnessTerms records a parallel string-valued cowitness used only for
// public-input serialisation of big integers that do not fit in a native
// type (spec §4.7 witnessTerms). It is a no-op for constant terms.
func (s *System) WitnessTerms(terms []Term, decimal string) {
	for _, t := range terms {
		if t.IsVariable() {
			s.cowitness[t.ID] = decimal
			return
		}
	}
}

// Cowitness returns the decimal-string cowitness recorded for id, if any.
func (s *System) Cowitness(id int) (string, bool) {
	v, ok := s.cowitness[id]
	return v, ok
}

// AddBooleanity emits x*(1-x) = 0 (spec invariant I1), unless t's
// variable ID has already been constrained boolean (the teacher's
// mtBooleans dedup in cs-r1cs-compiler.go plays the same role).
func (s *System) AddBooleanity(t Term) {
	if !t.IsVariable() {
		v := t.Coeff.BigInt()
		if v.Sign() != 0 && v.Cmp(bigOne) != 0 {
			s.fail("I1", "booleanity asserted on non-boolean constant %s", v.String())
		}
		return
	}
	if s.booleans[t.ID] {
		return
	}
	s.booleans[t.ID] = true
	one := s.zero.One()
	// A = x, B = 1 - x, C = 0
	a := Combination{t}
	b := Combination{{Coeff: one, ID: 0}, t.Scale(s.zero.Sub(one))}
	s.addConstraint(a, b, nil)
}

// IsBoolean reports whether t's variable has already been recorded as
// boolean-constrained via AddBooleanity.
func (s *System) IsBoolean(t Term) bool {
	if !t.IsVariable() {
		v := t.Coeff.BigInt()
		return v.Sign() == 0 || v.Cmp(bigOne) == 0
	}
	return s.booleans[t.ID]
}

// SetTrue emits x = 1 (spec §4.7 setTrue).
func (s *System) SetTrue(t Term) {
	one := s.zero.One()
	s.addConstraint(Combination{t}, Combination{{Coeff: one, ID: 0}}, Combination{{Coeff: one, ID: 0}})
}

// SetFalse emits x = 0 (spec §4.7 setFalse).
func (s *System) SetFalse(t Term) {
	one := s.zero.One()
	s.addConstraint(Combination{t}, Combination{{Coeff: one, ID: 0}}, nil)
}

// AddConstraint appends a raw R1 constraint A*B=C (spec §3). A nil C is
// treated as the zero combination.
func (s *System) AddConstraint(a, b, c Combination) {
	s.addConstraint(a, b, c)
}

func (s *System) addConstraint(a, b, c Combination) {
	s.constraints = append(s.constraints, Constraint{A: a, B: b, C: c})
}

// CheckpointInput records the current witness prefix as the public input
// (spec §4.7 checkpointInput): after this call no new ID may join the
// public prefix. Calling it twice is a programmer error.
func (s *System) CheckpointInput() {
	if s.checkpoint >= 0 {
		s.fail("I3", "CheckpointInput called twice")
	}
	s.checkpoint = s.nextID - 1
}

// NbPublic returns the size of the public-input prefix, or -1 if
// CheckpointInput has not yet been called.
func (s *System) NbPublic() int { return s.checkpoint }

// Tag creates an instrumentation point; pair it with a later Tag and pass
// both to AddCounter to measure the constraints/variables created between
// them (spec ambient stack; mirrors the teacher's frontend.Tag).
func (s *System) Tag(name string) Tag {
	return Tag{Name: name, VariableID: s.nextID, ConstraintID: len(s.constraints)}
}

// AddCounter records the constraint/variable growth between two Tags.
func (s *System) AddCounter(from, to Tag) {
	s.counters = append(s.counters, Counter{
		From:          from.Name,
		To:            to.Name,
		NbVariables:   to.VariableID - from.VariableID,
		NbConstraints: to.ConstraintID - from.ConstraintID,
	})
}

// Counters exposes the recorded AddCounter measurements (consumed by
// package diagnostics).
func (s *System) Counters() []Counter { return s.counters }

// Witness returns the witness value recorded for a variable ID. The
// identity wire (id 0) yields one; an ID that was never allocated is a
// programmer error.
func (s *System) Witness(id int) field.Fr {
	if id == 0 {
		return s.zero.One()
	}
	w, ok := s.witness[id]
	if !ok {
		s.fail("", "no witness recorded for variable %d", id)
	}
	return w
}

// WitnessMap exposes the full id -> Fr map for serialisation (package
// format). Callers must not mutate the returned map.
func (s *System) WitnessMap() map[int]field.Fr { return s.witness }

// Evaluate computes the field value of a linear combination against the
// current witness.
func (s *System) Evaluate(c Combination) field.Fr {
	acc := s.zero
	for _, t := range c {
		if t.ID == 0 {
			acc = acc.Add(t.Coeff)
			continue
		}
		acc = acc.Add(t.Coeff.Mul(s.Witness(t.ID)))
	}
	return acc
}

// Audit checks invariant I4 ("for every constraint A*B=C added,
// substituting W into the terms satisfies the equation") against every
// constraint appended so far. It is the "optional audit pass" spec §4.7
// allows; callers are not required to invoke it, but the property tests
// in this module's test suite do.
func (s *System) Audit() error {
	for i, c := range s.constraints {
		a := s.Evaluate(c.A)
		b := s.Evaluate(c.B)
		lhs := a.Mul(b)
		rhs := s.Evaluate(c.C)
		if !lhs.Equal(rhs) {
			return fmt.Errorf("r1cs: I4 violated at constraint %d: A*B != C", i)
		}
	}
	return nil
}

// CheckUnconstrained verifies every allocated variable ID (other than the
// identity wire) appears in at least one constraint, mirroring the
// teacher's checkVariables pass. It is skipped when Config.IgnoreUnconstrained
// is set.
func (s *System) CheckUnconstrained() error {
	if s.cfg.IgnoreUnconstrained {
		return nil
	}
	seen := make(map[int]bool, len(s.witness))
	mark := func(c Combination) {
		for _, t := range c {
			if t.IsVariable() {
				seen[t.ID] = true
			}
		}
	}
	for _, c := range s.constraints {
		mark(c.A)
		mark(c.B)
		mark(c.C)
	}
	var missing []int
	for id := range s.witness {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("r1cs: %d unconstrained variable(s): %v", len(missing), missing)
	}
	return nil
}
