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

// Package rewrite turns eligible variable declarations into constant declarations.
package rewrite

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrUnqualifiable is returned when an inferred type can't be spelled at the declaration.
	ErrUnqualifiable = errors.New("type can't be referenced")

	// ErrUnsupported is returned for statements that are not variable declarations.
	ErrUnsupported = errors.New("unsupported statement")
)

// Rewriter creates constant declarations for a single file.
type Rewriter struct {
	Info *types.Info
	Pkg  *types.Package
	File *ast.File
}

// MakeConstant returns a constant declaration equivalent to the var declaration or short variable
// declaration stmt. Inferred types are spelled out, so that the constant keeps the variable's type.
//
// The statement must have been classified as eligible, MakeConstant does not validate it again.
func (r Rewriter) MakeConstant(stmt ast.Stmt) (*ast.DeclStmt, error) {
	switch stmt := stmt.(type) {
	case *ast.DeclStmt:
		return r.constDecl(stmt)

	case *ast.AssignStmt:
		return r.constShortVarDecl(stmt)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, stmt)
	}
}

// constDecl rewrites var x = 1 into const x int = 1.
func (r Rewriter) constDecl(stmt *ast.DeclStmt) (*ast.DeclStmt, error) {
	gen, ok := stmt.Decl.(*ast.GenDecl)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, stmt.Decl)
	}

	if gen.Tok != token.VAR {
		return nil, fmt.Errorf("%w: %s declaration", ErrUnsupported, gen.Tok)
	}

	specs := make([]ast.Spec, 0, len(gen.Specs))
	for _, spec := range gen.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			return nil, fmt.Errorf("%w: %T spec", ErrUnsupported, spec)
		}

		typ := vspec.Type
		if typ == nil {
			var err error
			if typ, err = r.inferredType(vspec.Names, stmt.Pos()); err != nil {
				return nil, err
			}
		}

		specs = append(specs, &ast.ValueSpec{
			Doc:     vspec.Doc,
			Names:   vspec.Names,
			Type:    typ,
			Values:  vspec.Values,
			Comment: vspec.Comment,
		})
	}

	return &ast.DeclStmt{
		Decl: &ast.GenDecl{
			Doc:    gen.Doc,
			TokPos: gen.TokPos,
			Tok:    token.CONST,
			Lparen: gen.Lparen,
			Specs:  specs,
			Rparen: gen.Rparen,
		},
	}, nil
}

// constShortVarDecl rewrites x := 1 into const x int = 1.
func (r Rewriter) constShortVarDecl(stmt *ast.AssignStmt) (*ast.DeclStmt, error) {
	if stmt.Tok != token.DEFINE {
		return nil, fmt.Errorf("%w: %s assignment", ErrUnsupported, stmt.Tok)
	}

	names := make([]*ast.Ident, 0, len(stmt.Lhs))
	for _, expr := range stmt.Lhs {
		id, ok := expr.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("%w: assignment to %T", ErrUnsupported, expr)
		}

		names = append(names, id)
	}

	typ, err := r.inferredType(names, stmt.Pos())
	if err != nil {
		return nil, err
	}

	return &ast.DeclStmt{
		Decl: &ast.GenDecl{
			TokPos: stmt.Pos(),
			Tok:    token.CONST,
			Specs: []ast.Spec{&ast.ValueSpec{
				Names:  names,
				Type:   typ,
				Values: stmt.Rhs,
			}},
		},
	}, nil
}

// inferredType returns a type expression for the shared type of the declared names.
func (r Rewriter) inferredType(names []*ast.Ident, pos token.Pos) (ast.Expr, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no names", ErrUnsupported)
	}

	v, ok := r.Info.Defs[names[0]].(*types.Var)
	if !ok {
		return nil, fmt.Errorf("%w: unknown variable %s", ErrUnqualifiable, names[0].Name)
	}

	return r.typeExpr(v.Type(), v.Parent(), pos)
}

// TextEdits returns the edits transforming stmt into its replacement from [Rewriter.MakeConstant].
//
// Only the keyword, the inferred types and the assignment token are changed, leaving
// comments and formatting of the original statement intact.
func (r Rewriter) TextEdits(stmt ast.Stmt, repl *ast.DeclStmt) ([]analysis.TextEdit, error) {
	newDecl, ok := repl.Decl.(*ast.GenDecl)
	if !ok {
		return nil, fmt.Errorf("%w: replacement %T", ErrUnsupported, repl.Decl)
	}

	switch stmt := stmt.(type) {
	case *ast.DeclStmt:
		gen, ok := stmt.Decl.(*ast.GenDecl)
		if !ok || len(gen.Specs) != len(newDecl.Specs) {
			return nil, fmt.Errorf("%w: replacement does not match", ErrUnsupported)
		}

		edits := []analysis.TextEdit{{
			Pos:     gen.TokPos,
			End:     gen.TokPos + token.Pos(len(token.VAR.String())),
			NewText: []byte(token.CONST.String()),
		}}

		for i, spec := range gen.Specs {
			vspec, newSpec := spec.(*ast.ValueSpec), newDecl.Specs[i].(*ast.ValueSpec)
			if vspec.Type != nil || newSpec.Type == nil {
				continue
			}

			// Insert the inferred type after the last name
			edits = append(edits, analysis.TextEdit{
				Pos:     vspec.Names[len(vspec.Names)-1].End(),
				NewText: []byte(" " + types.ExprString(newSpec.Type)),
			})
		}

		return edits, nil

	case *ast.AssignStmt:
		if len(newDecl.Specs) != 1 || len(stmt.Lhs) == 0 {
			return nil, fmt.Errorf("%w: replacement does not match", ErrUnsupported)
		}

		newSpec := newDecl.Specs[0].(*ast.ValueSpec)
		last := stmt.Lhs[len(stmt.Lhs)-1]

		return []analysis.TextEdit{
			{
				Pos:     stmt.Pos(),
				NewText: []byte(token.CONST.String() + " "),
			},
			{
				// Replace " :=" with " T ="
				Pos:     last.End(),
				End:     stmt.TokPos + token.Pos(len(token.DEFINE.String())),
				NewText: []byte(" " + types.ExprString(newSpec.Type) + " " + token.ASSIGN.String()),
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, stmt)
	}
}
