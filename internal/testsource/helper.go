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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the makeconst analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`, importing the given packages. This allows testing statement-level
// code fragments without manually constructing the surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string, imports ...string) (fset *token.FileSet, f *ast.File, body inspector.Cursor) {
	tb.Helper()

	return ParseFile(tb, wrapSource(src, imports).String())
}

// ParseFile parses a complete Go source file and returns a cursor at the body of its first function declaration.
func ParseFile(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	body, ok := firstFuncBody(f)
	if !ok {
		tb.Fatal("Can't find function")
	}

	return fset, f, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing analyzer components that require type information
// (e.g. constant values, definitions or method selections).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	pkg, info, err := check(fset, f, nil)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// CheckTolerant type checks like [Check], but collects type errors instead of failing.
// The returned information is partial for erroneous code, as it would be for an analyzer running despite errors.
func CheckTolerant(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info, []error) {
	tb.Helper()

	var errs []error

	pkg, info, _ := check(fset, f, func(err error) { errs = append(errs, err) })

	return pkg, info, errs
}

// Sizes returns the type sizes used by the analysis driver for the host architecture.
func Sizes() types.Sizes {
	return types.SizesFor("gc", "amd64")
}

func check(fset *token.FileSet, f *ast.File, errorHandler func(error)) (*types.Package, *types.Info, error) {
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{
		Importer: importer.Default(),
		Sizes:    Sizes(),
		Error:    errorHandler,
	}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)

	return pkg, info, err
}

func wrapSource(src string, imports []string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\n"
		function   = "func _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(function) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error

	for _, imp := range imports {
		srcFile.WriteString("import ")           // ignore error
		srcFile.WriteString(strconv.Quote(imp)) // ignore error
		srcFile.WriteByte('\n')                  // ignore error
	}

	srcFile.WriteString(function) // ignore error
	srcFile.WriteString(src)      // ignore error
	srcFile.WriteString(suffix)   // ignore error

	return &srcFile
}

func firstFuncBody(f *ast.File) (body inspector.Cursor, ok bool) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		return c.ChildAt(edge.FuncDecl_Body, -1), true
	}

	return root, false
}
