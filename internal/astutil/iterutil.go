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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// AllAssigned yields all identifiers on the left-hand side of an assignment, including blank identifiers.
func AllAssigned(stmt *ast.AssignStmt) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, expr := range stmt.Lhs {
			id, ok := expr.(*ast.Ident)
			if !ok {
				continue
			}

			if !yield(id) {
				return
			}
		}
	}
}

// AllSpecs yields all value specs of a var or const declaration statement.
func AllSpecs(stmt *ast.DeclStmt) iter.Seq[*ast.ValueSpec] {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR && decl.Tok != token.CONST {
		return func(func(*ast.ValueSpec) bool) {}
	}

	return func(yield func(*ast.ValueSpec) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			if !yield(vspec) {
				return
			}
		}
	}
}

// AllDeclared yields all identifiers declared by a var or const declaration statement, including blank identifiers.
func AllDeclared(stmt *ast.DeclStmt) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for vspec := range AllSpecs(stmt) {
			for _, id := range vspec.Names {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// DeclaredNames returns the names declared by a declaration statement or short variable declaration.
func DeclaredNames(stmt ast.Stmt) []string {
	var names []string

	switch n := stmt.(type) {
	case *ast.DeclStmt:
		for id := range AllDeclared(n) {
			names = append(names, id.Name)
		}

	case *ast.AssignStmt:
		for id := range AllAssigned(n) {
			names = append(names, id.Name)
		}
	}

	return names
}
