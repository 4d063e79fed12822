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

// Package mutation collects which variables are written and where they are used.
package mutation

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"
)

// Facts holds the mutation facts of all variables referenced below a syntax tree node.
type Facts struct {
	// written contains variables that are the target of a write operation.
	written map[*types.Var]struct{}

	// uses maps variables to the cursors of all identifiers referring to them.
	uses map[*types.Var][]inspector.Cursor
}

// Collect gathers writes and uses of variables below root in one preorder pass.
func Collect(ctx context.Context, info *types.Info, root inspector.Cursor) Facts {
	defer trace.StartRegion(ctx, "Mutation").End()

	c := collector{
		info: info,
		facts: Facts{
			written: make(map[*types.Var]struct{}),
			uses:    make(map[*types.Var][]inspector.Cursor),
		},
	}

	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.Ident)(nil),
	}

	for n := range root.Preorder(filter...) {
		switch node := n.Node().(type) {
		case *ast.AssignStmt:
			c.handleAssignStmt(node)

		case *ast.IncDecStmt:
			c.handleWrite(node.X)

		case *ast.RangeStmt:
			c.handleRangeStmt(node)

		case *ast.UnaryExpr:
			c.handleUnaryExpr(node)

		case *ast.SelectorExpr:
			c.handleSelectorExpr(node)

		case *ast.Ident:
			c.handleIdent(node, n)
		}
	}

	return c.facts
}

// Written reports whether the variable is the target of any write operation.
func (f Facts) Written(v *types.Var) bool {
	_, ok := f.written[v]

	return ok
}

// Uses returns the cursors of all identifiers referring to the variable.
func (f Facts) Uses(v *types.Var) []inspector.Cursor {
	return f.uses[v]
}
