// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// maxShift limits constant shift counts we are willing to evaluate.
const maxShift = 1 << 10

// foldable reports whether a use of a variable with value val still compiles when the variable is constant.
//
// A constant operand makes the surrounding expression a constant expression as long as all
// other operands are constant, too. Such expressions are evaluated at compile time, where
// overflow, division by zero and out of range indices are errors instead of runtime behavior.
// foldable walks up the expression tree, evaluating the constant expression with [constant],
// until it reaches a non-constant operand or a non-expression. Constant switch cases and
// map keys must stay unique.
func (cl Classifier) foldable(use inspector.Cursor, val constant.Value) bool {
	for c := use; ; c = c.Parent() {
		kind, index := c.ParentEdge()
		parent := c.Parent()

		switch p := parent.Node().(type) {
		case *ast.ParenExpr:
			continue

		case *ast.UnaryExpr:
			var ok bool
			if val, ok = cl.unaryOp(p, val); !ok {
				return false
			}

		case *ast.BinaryExpr:
			other := p.X
			if kind == edge.BinaryExpr_X {
				other = p.Y
			}

			otherVal := cl.Info.Types[other].Value
			if otherVal == nil {
				// evaluated at run time, but constant divisors and shift counts are still checked
				return kind != edge.BinaryExpr_Y || cl.runtimeOperand(p, val)
			}

			x, y := val, otherVal
			if kind == edge.BinaryExpr_Y {
				x, y = otherVal, val
			}

			var ok bool
			if val, ok = cl.binaryOp(p, x, y); !ok {
				return false
			}

		case *ast.CallExpr:
			if kind != edge.CallExpr_Args {
				return true
			}

			var ok bool
			if val, ok = cl.callResult(p, index, val); !ok {
				return false
			}

			if val == nil {
				return true // not a constant expression
			}

		case *ast.IndexExpr:
			if kind != edge.IndexExpr_Index || !cl.indexable(p.X) {
				return true // map keys are not bounded
			}

			return cl.inBounds(p.X, val, false)

		case *ast.SliceExpr:
			if kind == edge.SliceExpr_X {
				return true
			}

			return cl.inBounds(p.X, val, true) && cl.slicesOrdered(p, c.Node(), val)

		case *ast.CaseClause:
			if kind != edge.CaseClause_List {
				return true
			}

			return !cl.duplicateCase(parent, c.Node(), val)

		case *ast.KeyValueExpr:
			if kind != edge.KeyValueExpr_Key {
				return true
			}

			return !cl.duplicateKey(parent, val)

		default:
			return true
		}
	}
}

// unaryOp folds a unary expression.
func (cl Classifier) unaryOp(p *ast.UnaryExpr, x constant.Value) (constant.Value, bool) {
	switch p.Op {
	case token.ADD, token.SUB, token.XOR, token.NOT:

	default:
		return nil, false // &x and <-x are not possible for constants
	}

	t, ok := cl.basicTypeOf(p)
	if !ok {
		return nil, false
	}

	var prec uint
	if p.Op == token.XOR && t.Info()&types.IsUnsigned != 0 {
		prec = uint(cl.bits(t))
	}

	res := constant.UnaryOp(p.Op, x, prec)

	return res, cl.representable(res, t)
}

// binaryOp folds a binary expression.
func (cl Classifier) binaryOp(p *ast.BinaryExpr, x, y constant.Value) (constant.Value, bool) {
	t, ok := cl.basicTypeOf(p)
	if !ok {
		return nil, false
	}

	var res constant.Value

	switch op := p.Op; op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return constant.MakeBool(constant.Compare(x, op, y)), true

	case token.SHL, token.SHR:
		x, y = constant.ToInt(x), constant.ToInt(y)
		if x.Kind() != constant.Int {
			return nil, false
		}

		s, ok := constant.Uint64Val(y)
		if !ok || s > maxShift {
			return nil, false
		}

		res = constant.Shift(x, op, uint(s))

	case token.QUO, token.REM:
		if constant.Sign(y) == 0 {
			return nil, false // division by zero
		}

		if t.Info()&types.IsInteger != 0 {
			x, y = constant.ToInt(x), constant.ToInt(y)
			if x.Kind() != constant.Int || y.Kind() != constant.Int {
				return nil, false
			}

			if op == token.QUO {
				op = token.QUO_ASSIGN // integer division
			}
		}

		res = constant.BinaryOp(x, op, y)

	default:
		res = constant.BinaryOp(x, op, y)
	}

	return res, cl.representable(res, t)
}

// runtimeOperand checks a constant right operand of a non-constant binary expression.
func (cl Classifier) runtimeOperand(p *ast.BinaryExpr, y constant.Value) bool {
	switch p.Op {
	case token.QUO, token.REM:
		t, ok := cl.basicTypeOf(p.X)

		return !ok || t.Info()&types.IsInteger == 0 || constant.Sign(y) != 0

	case token.SHL, token.SHR:
		return constant.Sign(y) >= 0

	default:
		return true
	}
}

// basicTypeOf returns the basic type of an expression.
func (cl Classifier) basicTypeOf(e ast.Expr) (*types.Basic, bool) {
	tv, ok := cl.Info.Types[e]
	if !ok || tv.Type == nil {
		return nil, false
	}

	t, ok := tv.Type.Underlying().(*types.Basic)

	return t, ok
}
