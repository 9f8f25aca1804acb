// Package eval implements the stack-walking evaluator from spec §4.5: a
// per-sort Visitor (spec design note 9's "one enum Kind plus a ValueSort
// discriminator; per-sort functions selected by match") that descends an
// ast.Arena expression left-then-right-then-self and emits constraints as
// a side effect of computing each node's Alg.
//
// Foreign nodes are never interpreted here: per design note 9 ("materialise
// the comparison eagerly in the arena; no lazy box required"), the circuit
// package evaluates a comparison or cross-width conversion the moment it is
// written and stores the already-computed Alg on the node, so every Eval*
// function treats KindForeign exactly like a leaf.
package eval

import (
	"github.com/jancarlsson/snarkfront/alg"
	"github.com/jancarlsson/snarkfront/ast"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Bool evaluates a boolean expression subtree (LogicalOps), recursing left
// (and right, for binary operators) before calling alg.Logical.
func Bool(s *r1cs.System, a *ast.Arena, ref ast.Ref) alg.Alg[bool] {
	n := a.Node(ref)
	switch n.Kind {
	case ast.KindConst, ast.KindVar:
		if !n.Blessed {
			panic("eval: Var referenced before Bless")
		}
		return n.Value.(alg.Alg[bool])
	case ast.KindForeign:
		return n.Value.(alg.Alg[bool])
	case ast.KindOp:
		k := n.OpKind.(ops.LogicalOps)
		left := Bool(s, a, n.Left)
		if k == ops.LCMPLMNT {
			return alg.Logical(s, k, left, alg.Alg[bool]{})
		}
		right := Bool(s, a, n.Right)
		return alg.Logical(s, k, left, right)
	default:
		panic("eval: unsupported node kind for Bool")
	}
}

// Word evaluates a fixed-width expression subtree (BitwiseOps), dispatching
// permutation operators (SHL/SHR/ROTL/ROTR) to alg.Permute and the
// remaining bit-parallel operators to alg.Bitwise.
func Word[V alg.Uint](s *r1cs.System, a *ast.Arena, ref ast.Ref) alg.Alg[V] {
	n := a.Node(ref)
	switch n.Kind {
	case ast.KindConst, ast.KindVar:
		if !n.Blessed {
			panic("eval: Var referenced before Bless")
		}
		return n.Value.(alg.Alg[V])
	case ast.KindForeign:
		return n.Value.(alg.Alg[V])
	case ast.KindOp:
		k := n.OpKind.(ops.BitwiseOps)
		left := Word[V](s, a, n.Left)
		if k.IsPermute() {
			return alg.Permute(s, k, left, n.OpArg)
		}
		if k == ops.BCMPLMNT {
			return alg.Bitwise(s, k, left, alg.Alg[V]{})
		}
		right := Word[V](s, a, n.Right)
		return alg.Bitwise(s, k, left, right)
	default:
		panic("eval: unsupported node kind for Word")
	}
}

// BigIntExpr evaluates an arbitrary-precision expression subtree
// (ScalarOps ADD/SUB/MUL).
func BigIntExpr(s *r1cs.System, a *ast.Arena, ref ast.Ref) alg.BigInt {
	n := a.Node(ref)
	switch n.Kind {
	case ast.KindConst, ast.KindVar:
		if !n.Blessed {
			panic("eval: Var referenced before Bless")
		}
		return n.Value.(alg.BigInt)
	case ast.KindForeign:
		return n.Value.(alg.BigInt)
	case ast.KindOp:
		k := n.OpKind.(ops.ScalarOps)
		left := BigIntExpr(s, a, n.Left)
		right := BigIntExpr(s, a, n.Right)
		return alg.Scalar(s, k, left, right)
	default:
		panic("eval: unsupported node kind for BigIntExpr")
	}
}
