// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package mutation

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

type collector struct {
	info  *types.Info
	facts Facts
}

// handleAssignStmt records assignments (x = ..., x += ...) and redeclarations in short variable declarations.
func (c *collector) handleAssignStmt(stmt *ast.AssignStmt) {
	for _, expr := range stmt.Lhs {
		if stmt.Tok == token.DEFINE {
			// Only identifiers not newly defined are assigned to: a, err := ...
			if id, ok := expr.(*ast.Ident); ok && c.info.Defs[id] != nil {
				continue
			}
		}

		c.handleWrite(expr)
	}
}

// handleRangeStmt records range loops assigning to existing variables (for k, v = range ...).
func (c *collector) handleRangeStmt(stmt *ast.RangeStmt) {
	if stmt.Tok != token.ASSIGN {
		return
	}

	for _, expr := range []ast.Expr{stmt.Key, stmt.Value} {
		if expr == nil {
			continue
		}

		c.handleWrite(expr)
	}
}

// handleUnaryExpr records variables whose address is taken (&x).
func (c *collector) handleUnaryExpr(expr *ast.UnaryExpr) {
	if expr.Op != token.AND {
		return
	}

	c.handleWrite(expr.X)
}

// handleSelectorExpr records implicit address operations of pointer receiver method values (x.Inc()).
func (c *collector) handleSelectorExpr(expr *ast.SelectorExpr) {
	sel, ok := c.info.Selections[expr]
	if !ok || sel.Kind() != types.MethodVal {
		return
	}

	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return
	}

	if _, ptrRecv := recv.Type().Underlying().(*types.Pointer); !ptrRecv {
		return
	}

	if _, ptrVar := sel.Recv().Underlying().(*types.Pointer); ptrVar {
		return // explicit pointer, no implicit &x
	}

	c.handleWrite(expr.X)
}

// handleWrite records a variable written through expr.
func (c *collector) handleWrite(expr ast.Expr) {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok || id.Name == "_" {
		return
	}

	v, ok := c.info.Uses[id].(*types.Var)
	if !ok {
		return
	}

	c.facts.written[v] = struct{}{}
}

// handleIdent records variable usages.
func (c *collector) handleIdent(id *ast.Ident, n inspector.Cursor) {
	v, ok := c.info.Uses[id].(*types.Var)
	if !ok {
		return
	}

	c.facts.uses[v] = append(c.facts.uses[v], n)
}
