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

// Package classify decides whether a local variable declaration can be made constant.
//
// A declaration statement is eligible as a whole: every declared variable needs its own
// compile-time constant initializer of an allowed type and must never be written afterwards.
package classify

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/makeconst/internal/mutation"
)

// Classifier checks declaration statements of a single file.
type Classifier struct {
	// Info is the type information of the package.
	Info *types.Info

	// Sizes is used to determine whether folded constants are representable. Defaults to gc/amd64.
	Sizes types.Sizes

	// Facts are the mutation facts of the file.
	Facts mutation.Facts

	// ShortDecl enables checking short variable declarations.
	ShortDecl bool

	// NamedTypes permits defined types with a constant underlying type.
	NamedTypes bool
}

// declarator is a single declared variable with its initializer.
type declarator struct {
	v     *types.Var
	value ast.Expr
	spec  int // index of the value spec, all names of a short variable declaration share spec 0
	typed bool
}

// IsEligible reports whether the declaration statement at c can be made constant.
func (cl Classifier) IsEligible(c inspector.Cursor) bool {
	return cl.Check(c).Eligible()
}

// Check classifies the declaration statement at c.
//
// The checks short-circuit in order: already constant, statement position, initializers,
// constant values and types, writes to the declared variables, and constant folding of their uses.
func (cl Classifier) Check(c inspector.Cursor) Reason {
	var (
		decls  []declarator
		reason Reason
	)

	switch stmt := c.Node().(type) {
	case *ast.DeclStmt:
		decls, reason = cl.declStmt(stmt)

	case *ast.AssignStmt:
		decls, reason = cl.shortVarDecl(stmt)

	default:
		return ReasonNotDeclaration
	}

	if reason != ReasonEligible {
		return reason
	}

	if !inStatementList(c) {
		return ReasonNotStatement
	}

	values := make([]constant.Value, len(decls))
	for i, d := range decls {
		if reason := cl.checkInitializer(d); reason != ReasonEligible {
			return reason
		}

		values[i] = cl.Info.Types[d.value].Value
	}

	if !sameInferredTypes(decls) {
		return ReasonMixedTypes
	}

	for _, d := range decls {
		if cl.Facts.Written(d.v) {
			return ReasonMutated
		}
	}

	for i, d := range decls {
		for _, use := range cl.Facts.Uses(d.v) {
			if !cl.foldable(use, values[i]) {
				return ReasonFolding
			}
		}
	}

	return ReasonEligible
}

// declStmt collects the declarators of a var declaration.
func (cl Classifier) declStmt(stmt *ast.DeclStmt) ([]declarator, Reason) {
	gen, ok := stmt.Decl.(*ast.GenDecl)
	if !ok {
		return nil, ReasonNotDeclaration
	}

	switch gen.Tok {
	case token.VAR:

	case token.CONST:
		return nil, ReasonConstant

	default:
		return nil, ReasonNotDeclaration
	}

	var decls []declarator

	for i, spec := range gen.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			return nil, ReasonUnresolved
		}

		// var a, b = f() and var x int have no initializer per name
		if len(vspec.Values) != len(vspec.Names) {
			return nil, ReasonNoInitializer
		}

		for j, id := range vspec.Names {
			if id.Name == "_" {
				return nil, ReasonBlank
			}

			v, ok := cl.Info.Defs[id].(*types.Var)
			if !ok {
				return nil, ReasonUnresolved
			}

			decls = append(decls, declarator{v: v, value: vspec.Values[j], spec: i, typed: vspec.Type != nil})
		}
	}

	if len(decls) == 0 {
		return nil, ReasonNotDeclaration
	}

	return decls, ReasonEligible
}

// shortVarDecl collects the declarators of a short variable declaration.
func (cl Classifier) shortVarDecl(stmt *ast.AssignStmt) ([]declarator, Reason) {
	if !cl.ShortDecl || stmt.Tok != token.DEFINE {
		return nil, ReasonNotDeclaration
	}

	// a, b := f()
	if len(stmt.Lhs) != len(stmt.Rhs) {
		return nil, ReasonNoInitializer
	}

	decls := make([]declarator, 0, len(stmt.Lhs))

	for i, expr := range stmt.Lhs {
		id, ok := expr.(*ast.Ident)
		if !ok {
			return nil, ReasonUnresolved
		}

		if id.Name == "_" {
			return nil, ReasonBlank
		}

		def := cl.Info.Defs[id]
		if def == nil {
			if _, ok := cl.Info.Uses[id]; ok {
				return nil, ReasonRedeclared
			}

			return nil, ReasonUnresolved
		}

		v, ok := def.(*types.Var)
		if !ok {
			return nil, ReasonUnresolved
		}

		decls = append(decls, declarator{v: v, value: stmt.Rhs[i]})
	}

	return decls, ReasonEligible
}

// checkInitializer verifies the initializer is a constant assignable to an allowed variable type.
func (cl Classifier) checkInitializer(d declarator) Reason {
	tv, ok := cl.Info.Types[d.value]
	if !ok || tv.Type == nil {
		return ReasonUnresolved
	}

	if tv.Value == nil {
		return ReasonNotConstant
	}

	if !cl.allowedType(d.v.Type()) {
		return ReasonType
	}

	// var x int = "abc" is a compile error reported by the type checker
	if !types.AssignableTo(tv.Type, d.v.Type()) {
		return ReasonUnresolved
	}

	return ReasonEligible
}

// allowedType reports whether t can be the type of a constant.
//
// Allowed are the predeclared boolean, numeric and string types, and, when enabled,
// defined types with such an underlying type.
func (cl Classifier) allowedType(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return t.Info()&types.IsConstType != 0

	case *types.Named:
		if !cl.NamedTypes {
			return false
		}

		u, ok := t.Underlying().(*types.Basic)

		return ok && u.Info()&types.IsConstType != 0

	default:
		return false
	}
}

// sameInferredTypes checks that declarators without an explicit type that would share a
// const spec have identical types.
func sameInferredTypes(decls []declarator) bool {
	for i := 1; i < len(decls); i++ {
		prev, d := decls[i-1], decls[i]
		if d.typed || d.spec != prev.spec {
			continue
		}

		if !types.Identical(prev.v.Type(), d.v.Type()) {
			return false
		}
	}

	return true
}

// inStatementList reports whether the statement at c can be replaced by a constant declaration.
func inStatementList(c inspector.Cursor) bool {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body, edge.LabeledStmt_Stmt:
		return true

	default:
		return false
	}
}
