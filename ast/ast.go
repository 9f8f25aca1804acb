// Package ast implements the circuit-expression AST as a tagged sum type
// stored in a contiguous arena (spec §4.3, design note 9): nodes reference
// each other by integer index rather than by owning pointer, so an entire
// statement's subexpressions are freed by dropping the arena, never by
// per-node destructor bookkeeping.
package ast

import "fmt"

// Kind discriminates the four node variants from spec §3/§4.3.
type Kind int

const (
	KindConst Kind = iota
	KindVar
	KindOp
	KindForeign
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "Const"
	case KindVar:
		return "Var"
	case KindOp:
		return "Op"
	case KindForeign:
		return "Foreign"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Ref is an index into an Arena. The zero Ref is never valid (arenas start
// numbering at 1) so a zero Ref in an optional field reliably means "absent".
type Ref int

// Node is one arena slot. Exactly one of the payload fields is meaningful,
// selected by Kind:
//
//   - KindConst / KindVar: Value holds an opaque handle to that node's
//     Alg[V] (stored by the caller, e.g. package eval, keyed by the node's
//     Ref — the AST itself is value-type-agnostic so it can hold bool,
//     BigInt and fixed-width nodes in the same arena).
//   - KindOp: OpKind/OpArg name the operator, Left/Right reference child
//     nodes (Right is zero for unary operators).
//   - KindForeign: OpKind names the cross-type comparison/conversion,
//     Left (and, for a comparison, Right) reference the operand subtrees,
//     and Value holds the already-computed Alg result.
type Node struct {
	Kind Kind

	// KindConst / KindVar / KindForeign
	Value any // opaque Alg[V] handle, type-asserted by the evaluator

	// KindVar only: true once the variable has been bound by Bless.
	Blessed bool

	// KindOp / KindForeign
	OpKind    any // ops.LogicalOps | ops.ScalarOps | ops.BitwiseOps | ops.EqualityCmp | ops.ScalarCmp
	OpArg     int // permutation count for SHL/SHR/ROTL/ROTR; unused otherwise
	Left      Ref
	Right     Ref // zero if the operator is unary
	IsForeign bool
}

// Arena owns a statement's (or a whole circuit's) AST nodes. Create one
// with NewArena, which reserves index 0; the zero Arena is not usable.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{nodes: make([]Node, 1)} } // index 0 reserved/invalid

// Reset drops every node, reusing the underlying storage. This is the
// "single arena drop" design note 9 asks for in place of per-node
// destructor tracking.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:1]
}

// Node returns the node at ref. Indexing with the zero Ref panics: callers
// must check for the zero Ref (meaning "absent") before dereferencing.
func (a *Arena) Node(ref Ref) *Node {
	if ref == 0 {
		panic("ast: dereference of the zero Ref")
	}
	return &a.nodes[ref]
}

// NewConst allocates a KindConst node holding value (an Alg[V]) and returns
// its Ref.
func (a *Arena) NewConst(value any) Ref {
	return a.push(Node{Kind: KindConst, Value: value})
}

// NewVar allocates a KindVar node. If value is non-nil the variable is
// already blessed; otherwise it is a placeholder that must be bound with
// Bless (package circuit) before any expression referencing it is
// evaluated — dereferencing it earlier is a programmer error (design note
// 9: "dereferencing before bless is a programmer error").
func (a *Arena) NewVar(value any) Ref {
	return a.push(Node{Kind: KindVar, Value: value, Blessed: value != nil})
}

// BindVar fills in a previously-placeholder variable node's value.
func (a *Arena) BindVar(ref Ref, value any) {
	n := a.Node(ref)
	if n.Kind != KindVar {
		panic("ast: BindVar called on a non-Var node")
	}
	n.Value = value
	n.Blessed = true
}

// NewOp allocates a KindOp node. right is the zero Ref for unary operators.
func (a *Arena) NewOp(kind any, left, right Ref) Ref {
	return a.push(Node{Kind: KindOp, OpKind: kind, Left: left, Right: right})
}

// NewShift allocates a KindOp node for one of the permutation operators,
// which carry a compile-time shift/rotate count instead of a second
// operand subtree.
func (a *Arena) NewShift(kind any, operand Ref, count int) Ref {
	return a.push(Node{Kind: KindOp, OpKind: kind, Left: operand, OpArg: count})
}

// NewForeign allocates a KindForeign node: a cross-type comparison (left,
// right both set) or a width/type conversion (right is the zero Ref).
func (a *Arena) NewForeign(kind any, left, right Ref) Ref {
	return a.push(Node{Kind: KindForeign, OpKind: kind, Left: left, Right: right, IsForeign: true})
}

func (a *Arena) push(n Node) Ref {
	a.nodes = append(a.nodes, n)
	return Ref(len(a.nodes) - 1)
}

// Visitor receives one callback per node Kind, in the order spec §4.3
// mandates: left always, then right if the operator is binary, then the
// node itself.
type Visitor interface {
	VisitConst(value any)
	VisitVar(ref Ref, value any, blessed bool)
	VisitOp(kind any, argc int, left, right Ref)
	VisitForeign(kind any, left, right Ref)
}

// Walk performs the left-then-right-then-self traversal spec §4.3
// describes, calling back into v at each node. argc tells VisitOp whether
// to expect a Right child; callers determine argc from the concrete
// operator enum's Arity() method.
func Walk(a *Arena, ref Ref, argc func(kind any) int, v Visitor) {
	n := a.Node(ref)
	switch n.Kind {
	case KindConst:
		v.VisitConst(n.Value)
	case KindVar:
		if !n.Blessed {
			panic("ast: Var referenced before Bless (programmer error)")
		}
		v.VisitVar(ref, n.Value, n.Blessed)
	case KindOp:
		arity := argc(n.OpKind)
		Walk(a, n.Left, argc, v)
		if arity == 2 {
			Walk(a, n.Right, argc, v)
		}
		v.VisitOp(n.OpKind, arity, n.Left, n.Right)
	case KindForeign:
		Walk(a, n.Left, argc, v)
		if n.Right != 0 {
			Walk(a, n.Right, argc, v)
		}
		v.VisitForeign(n.OpKind, n.Left, n.Right)
	default:
		panic(fmt.Sprintf("ast: unknown node kind %v", n.Kind))
	}
}
