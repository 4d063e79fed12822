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

package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// typeExpr returns an expression denoting t at position pos in scope.
//
// Only predeclared and (non-generic) defined types are supported, which covers all constant types.
func (r Rewriter) typeExpr(t types.Type, scope *types.Scope, pos token.Pos) (ast.Expr, error) {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		if _, obj := scope.LookupParent(t.Name(), pos); obj == nil || obj.Parent() != types.Universe {
			return nil, fmt.Errorf("%w: %s is shadowed", ErrUnqualifiable, t.Name())
		}

		return ast.NewIdent(t.Name()), nil

	case *types.Named:
		if t.TypeArgs().Len() > 0 {
			return nil, fmt.Errorf("%w: instantiated type %s", ErrUnqualifiable, t)
		}

		obj := t.Obj()
		if pkg := obj.Pkg(); pkg != nil && pkg != r.Pkg {
			name, ok := r.importName(pkg, scope, pos)
			if !ok {
				return nil, fmt.Errorf("%w: package %s is not imported", ErrUnqualifiable, pkg.Path())
			}

			return &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent(obj.Name())}, nil
		}

		if _, found := scope.LookupParent(obj.Name(), pos); found != obj {
			return nil, fmt.Errorf("%w: %s is shadowed", ErrUnqualifiable, obj.Name())
		}

		return ast.NewIdent(obj.Name()), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnqualifiable, t)
	}
}

// importName returns the name under which pkg is imported and visible at pos.
func (r Rewriter) importName(pkg *types.Package, scope *types.Scope, pos token.Pos) (string, bool) {
	if r.File == nil {
		return "", false
	}

	for _, spec := range r.File.Imports {
		pn := r.Info.PkgNameOf(spec)
		if pn == nil || pn.Imported() != pkg {
			continue
		}

		switch name := pn.Name(); name {
		case "_", ".":
			continue

		default:
			// The package name might be shadowed by a local declaration
			if _, obj := scope.LookupParent(name, pos); obj != pn {
				continue
			}

			return name, true
		}
	}

	return "", false
}
