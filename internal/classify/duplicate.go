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

	"golang.org/x/tools/go/ast/inspector"
)

// duplicateCase reports whether val collides with another constant case of the expression switch
// containing clause. expr is the case expression holding val.
func (cl Classifier) duplicateCase(clause inspector.Cursor, expr ast.Node, val constant.Value) bool {
	switch val.Kind() {
	case constant.Int, constant.Float, constant.String:

	default:
		return false // duplicate booleans are accepted by the compiler
	}

	body := clause.Parent()
	if _, ok := body.Parent().Node().(*ast.SwitchStmt); !ok {
		return false
	}

	e, ok := expr.(ast.Expr)
	if !ok {
		return false
	}

	t := cl.Info.Types[e].Type

	for c := range body.Children() {
		cc, ok := c.Node().(*ast.CaseClause)
		if !ok {
			continue
		}

		for _, other := range cc.List {
			if other == e {
				continue
			}

			if tv := cl.Info.Types[other]; tv.Value != nil && mayCollide(t, tv.Type) && equalConstants(val, tv.Value) {
				return true
			}
		}
	}

	return false
}

// duplicateKey reports whether the key val of the key-value pair kv collides with another
// constant key of a map literal.
func (cl Classifier) duplicateKey(kv inspector.Cursor, val constant.Value) bool {
	lit, ok := kv.Parent().Node().(*ast.CompositeLit)
	if !ok {
		return false
	}

	tv, ok := cl.Info.Types[lit]
	if !ok || tv.Type == nil {
		return false
	}

	m, ok := tv.Type.Underlying().(*types.Map)
	if !ok {
		return false // array and slice keys are constant already, struct keys are fields
	}

	self := kv.Node().(*ast.KeyValueExpr)
	keyType := cl.Info.Types[self.Key].Type
	iface := types.IsInterface(m.Key())

	for _, elt := range lit.Elts {
		other, ok := elt.(*ast.KeyValueExpr)
		if !ok || other == self {
			continue
		}

		otv := cl.Info.Types[other.Key]
		if otv.Value == nil || !equalConstants(val, otv.Value) {
			continue
		}

		// keys of different dynamic types are distinct
		if iface && !mayCollide(keyType, otv.Type) {
			continue
		}

		return true
	}

	return false
}

// equalConstants reports whether two constants have the same value.
func equalConstants(x, y constant.Value) bool {
	return comparableConstants(x, y) && constant.Compare(x, token.EQL, y)
}

// mayCollide reports whether constants of types x and y can be duplicates. Untyped constants match any type.
func mayCollide(x, y types.Type) bool {
	if x == nil || y == nil || isUntyped(x) || isUntyped(y) {
		return true
	}

	return types.Identical(x, y)
}

func isUntyped(t types.Type) bool {
	b, ok := t.(*types.Basic)

	return ok && b.Info()&types.IsUntyped != 0
}
