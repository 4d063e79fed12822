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
	"go/types"
)

// indexable reports whether x is a string, array, pointer to array or slice.
func (cl Classifier) indexable(x ast.Expr) bool {
	tv, ok := cl.Info.Types[x]
	if !ok || tv.Type == nil || tv.IsType() {
		return false
	}

	switch t := tv.Type.Underlying().(type) {
	case *types.Basic:
		return t.Info()&types.IsString != 0

	case *types.Pointer:
		_, ok := t.Elem().Underlying().(*types.Array)

		return ok

	case *types.Array, *types.Slice:
		return true

	default:
		return false // maps, generic instantiations and type parameters
	}
}

// inBounds checks a constant index into x.
func (cl Classifier) inBounds(x ast.Expr, val constant.Value, slice bool) bool {
	i, ok := constant.Int64Val(constant.ToInt(val))
	if !ok || i < 0 {
		return false
	}

	tv, ok := cl.Info.Types[x]
	if !ok {
		return false
	}

	length := int64(-1)

	switch {
	case tv.Value != nil && tv.Value.Kind() == constant.String:
		length = int64(len(constant.StringVal(tv.Value)))

	default:
		t := tv.Type.Underlying()
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem().Underlying()
		}

		if a, ok := t.(*types.Array); ok {
			length = a.Len()
		}
	}

	switch {
	case length < 0:
		return true // checked at run time

	case slice:
		return i <= length

	default:
		return i < length
	}
}

// slicesOrdered checks that the constant indices of a slice expression are non-decreasing,
// substituting val for the index expression expr.
func (cl Classifier) slicesOrdered(p *ast.SliceExpr, expr ast.Node, val constant.Value) bool {
	highest := int64(0)

	for _, index := range [...]ast.Expr{p.Low, p.High, p.Max} {
		if index == nil {
			continue
		}

		v := val
		if index != expr {
			if v = cl.Info.Types[index].Value; v == nil {
				continue
			}
		}

		i, ok := constant.Int64Val(constant.ToInt(v))
		if !ok || i < highest {
			return false
		}

		highest = i
	}

	return true
}
