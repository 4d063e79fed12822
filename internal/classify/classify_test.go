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

package classify_test

import (
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/makeconst/internal/astutil"
	. "fillmore-labs.com/makeconst/internal/classify"
	"fillmore-labs.com/makeconst/internal/mutation"
	"fillmore-labs.com/makeconst/internal/testsource"
)

const targetName = "x"

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		src     string
		imports []string
		want    Reason
	}{
		{"int", `var x int = 0; _ = x`, nil, ReasonEligible},
		{"inferred", `var x = 4; _ = x`, nil, ReasonEligible},
		{"string", `var x string = "abc"; _ = x`, nil, ReasonEligible},
		{"inferred_string", `var x = "abc"; _ = x`, nil, ReasonEligible},
		{"rune", `var x = 'a'; _ = x`, nil, ReasonEligible},
		{"bool", `var x = 1 < 2; _ = x`, nil, ReasonEligible},
		{"complex", `var x = 1 + 2i; _ = x`, nil, ReasonEligible},
		{"constant_expression", `const c = 2; var x = c * 3; _ = x`, nil, ReasonEligible},
		{"duration", `var x = 2 * time.Second; _ = x`, []string{"time"}, ReasonEligible},
		{"short", `x := 4; _ = x`, nil, ReasonEligible},
		{"same_inferred", `var x, y = 1, 2; _, _ = x, y`, nil, ReasonEligible},
		{"grouped", `var ( x = 1; y = "a" ); _, _ = x, y`, nil, ReasonEligible},
		{"named_type", `type C float64; var x C = 1.5; _ = x`, nil, ReasonEligible},
		{"labeled", `goto L; L: var x = 1; _ = x`, nil, ReasonEligible},
		{"case_body", `switch { case true: x := 1; _ = x }`, nil, ReasonEligible},
		{"interface", `var x any = "abc"; _ = x`, nil, ReasonType},
		{"pointer", `var x *int = nil; _ = x`, nil, ReasonNotConstant},
		{"already_const", `const x = 0; _ = x`, nil, ReasonConstant},
		{"no_initializer", `var x int; x = 0; _ = x`, nil, ReasonNoInitializer},
		{"tuple", `var x, y = func() (int, int) { return 1, 2 }(); _, _ = x, y`, nil, ReasonNoInitializer},
		{"short_tuple", `x, y := func() (int, int) { return 1, 2 }(); _, _ = x, y`, nil, ReasonNoInitializer},
		{"not_constant", `var x = time.Now().YearDay(); _ = x`, []string{"time"}, ReasonNotConstant},
		{"multiple_not_constant", `var x, j int = 0, time.Now().YearDay(); _, _ = x, j`, []string{"time"}, ReasonNotConstant},
		{"mixed_inferred", `var x, y = 1, "a"; _, _ = x, y`, nil, ReasonMixedTypes},
		{"short_mixed", `x, y := 1, 2.5; _, _ = x, y`, nil, ReasonMixedTypes},
		{"blank", `var x, _ = 1, 2; _ = x`, nil, ReasonBlank},
		{"redeclared", `err := error(nil); _ = err; x, err := 1, error(nil); _, _ = x, err`, nil, ReasonRedeclared},
		{"if_init", `if x := 1; x > 0 {}`, nil, ReasonNotStatement},
		{"increment", `var x int = 0; x++; _ = x`, nil, ReasonMutated},
		{"assigned", `var x = 0; x = 1; _ = x`, nil, ReasonMutated},
		{"compound", `var x = 1; x += 2; _ = x`, nil, ReasonMutated},
		{"address", `var x = 1; p := &x; _ = p`, nil, ReasonMutated},
		{"closure", `var x = 1; f := func() { x = 2 }; f(); _ = x`, nil, ReasonMutated},
		{"range_assign", `var x = 0; for x = range 3 {}; _ = x`, nil, ReasonMutated},
		{"redeclaration_assign", `var x = 0; x, y := 1, 2; _, _ = x, y`, nil, ReasonMutated},
		{"other_mutated", `var x, y = 1, 2; y--; _, _ = x, y`, nil, ReasonMutated},
		{"overflow", `var x int8 = 100; _ = x * 2`, nil, ReasonFolding},
		{"nested_overflow", `var x int8 = 100; _ = (x + 20) * 2`, nil, ReasonFolding},
		{"no_overflow", `var x int8 = 100; _ = x / 2`, nil, ReasonEligible},
		{"runtime_operand", `y := int8(3); var x int8 = 100; _ = x * y * 2; _ = y`, nil, ReasonEligible},
		{"division_by_zero", `var x = 0; _ = 1 / x`, nil, ReasonFolding},
		{"runtime_division_by_zero", `var x = 0; n := 5; _ = n / x`, nil, ReasonFolding},
		{"runtime_float_division", `var x = 0.0; f := 1.5; _ = f / x`, nil, ReasonEligible},
		{"runtime_negative_shift", `var x = -1; n := 1; _ = n << x`, nil, ReasonFolding},
		{"float_division", `var x = 0.0; _ = 1 / x`, nil, ReasonFolding},
		{"truncated", `var x = 1.5; _ = int(x)`, nil, ReasonFolding},
		{"conversion", `var x = 2.0; _ = int8(x)`, nil, ReasonEligible},
		{"conversion_overflow", `var x = 300; _ = int8(x)`, nil, ReasonFolding},
		{"array_index", `var x = 3; a := [3]int{}; _ = a[x]`, nil, ReasonFolding},
		{"array_index_ok", `var x = 2; a := [3]int{}; _ = a[x]`, nil, ReasonEligible},
		{"negative_index", `var x = -1; s := []int{1}; _ = s[x]`, nil, ReasonFolding},
		{"slice_bound", `var x = 3; a := [3]int{}; _ = a[:x]`, nil, ReasonEligible},
		{"string_index", `var x = 5; _ = "abc"[x]`, nil, ReasonFolding},
		{"negative_make", `var x = -1; _ = make([]int, x)`, nil, ReasonFolding},
		{"unsigned_negation", `var x uint = 1; _ = -x`, nil, ReasonFolding},
		{"unsigned_complement", `var x uint8 = 1; _ = ^x`, nil, ReasonEligible},
		{"shift_overflow", `var x int32 = 1; _ = x << 40`, nil, ReasonFolding},
		{"shift_count", `var x uint = 3; _ = 1 << x`, nil, ReasonEligible},
		{"float32_overflow", `var x float32 = 1e38; _ = x * 10`, nil, ReasonFolding},
		{"comparison", `var x = 1; _ = x == 1`, nil, ReasonEligible},
		{"concatenation", `var x = "a"; _ = x + "b"`, nil, ReasonEligible},
		{"map_string_key", `var x = "k"; m := map[string]int{}; _ = m[x]`, nil, ReasonEligible},
		{"map_negative_key", `var x = -1; m := map[int]int{}; _ = m[x]`, nil, ReasonEligible},
		{"array_pointer_index", `var x = 3; a := &[3]int{}; _ = a[x]`, nil, ReasonFolding},
		{"builtin_max_overflow", `var x int8 = 100; _ = max(x, 1) * 2`, nil, ReasonFolding},
		{"builtin_max", `var x int8 = 100; _ = max(x, 1) / 2`, nil, ReasonEligible},
		{"builtin_min_runtime", `y := int8(1); var x int8 = 100; _ = min(x, y) * 2; _ = y`, nil, ReasonEligible},
		{"len_negative_conversion", `var x = "abc"; _ = uint(len(x) - 10)`, nil, ReasonFolding},
		{"len_conversion", `var x = "abc"; _ = uint(len(x))`, nil, ReasonEligible},
		{"conversion_chain", `var x = 100; _ = int8(x) * 2`, nil, ReasonFolding},
		{"string_conversion", `var x = 65; _ = string(rune(x)) + "b"`, nil, ReasonEligible},
		{"real_overflow", `var x = 1e300 + 0i; _ = real(x) * 1e10`, nil, ReasonFolding},
		{"complex_builtin", `var x = 2.0; _ = complex(x, 1) * 2`, nil, ReasonEligible},
		{"duplicate_case", `var x = 1; n := 2; switch n { case x: case 1: }`, nil, ReasonFolding},
		{"distinct_case", `var x = 1; n := 2; switch n { case x: case 2: }`, nil, ReasonEligible},
		{"duplicate_bool_case", `var x = true; b := false; switch b { case x: case true: }`, nil, ReasonEligible},
		{"duplicate_map_key", `var x = "a"; _ = map[string]int{x: 1, "a": 2}`, nil, ReasonFolding},
		{"distinct_map_key", `var x = "b"; _ = map[string]int{x: 1, "a": 2}`, nil, ReasonEligible},
		{"interface_map_key", `var x int8 = 1; _ = map[any]int{x: 1, 1: 2}`, nil, ReasonEligible},
		{"inverted_slice", `var x = 1; s := []int{1, 2, 3}; _ = s[2:x]`, nil, ReasonFolding},
		{"ordered_slice", `var x = 2; s := []int{1, 2, 3}; _ = s[1:x]`, nil, ReasonEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, body := testsource.Parse(t, tt.src, tt.imports...)
			_, info := testsource.Check(t, fset, f)

			cl := newClassifier(t, info, body)
			stmt := findStatement(t, body, targetName)

			if got, want := cl.Check(stmt), tt.want; got != want {
				t.Errorf("Got Check() = %q, want %q", got, want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name       string
		src        string
		shortDecl  bool
		namedTypes bool
		want       Reason
	}{
		{"short_disabled", `x := 4; _ = x`, false, true, ReasonNotDeclaration},
		{"var_short_disabled", `var x = 4; _ = x`, false, true, ReasonEligible},
		{"named_disabled", `type C float64; var x C = 1.5; _ = x`, true, false, ReasonType},
		{"alias_named_disabled", `type C = float64; var x C = 1.5; _ = x`, true, false, ReasonEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, body := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			cl := newClassifier(t, info, body)
			cl.ShortDecl, cl.NamedTypes = tt.shortDecl, tt.namedTypes

			stmt := findStatement(t, body, targetName)

			if got, want := cl.Check(stmt), tt.want; got != want {
				t.Errorf("Got Check() = %q, want %q", got, want)
			}
		})
	}
}

func TestPointerMethod(t *testing.T) {
	t.Parallel()

	const src = `package test

type C int

func (c *C) Inc() { *c++ }

func (c C) Get() int { return int(c) }

func _() {
	var x C = 1
	x.Inc()

	var y C = 2
	_ = y.Get()
}
`

	fset, f, body := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	root := body.Parent().Parent() // *ast.File
	cl := newClassifier(t, info, root)

	tests := [...]struct {
		name string
		want Reason
	}{
		{"x", ReasonMutated},
		{"y", ReasonEligible},
	}

	for _, tt := range tests {
		// The first function body is a method, search the file.
		stmt := findStatement(t, root, tt.name)

		if got, want := cl.Check(stmt), tt.want; got != want {
			t.Errorf("Got Check(%s) = %q, want %q", tt.name, got, want)
		}
	}
}

func TestCompileError(t *testing.T) {
	t.Parallel()

	fset, f, body := testsource.Parse(t, `var x int = "abc"; _ = x`)

	_, info, errs := testsource.CheckTolerant(t, fset, f)
	if len(errs) == 0 {
		t.Fatal("Expected a type error")
	}

	cl := newClassifier(t, info, body)
	stmt := findStatement(t, body, targetName)

	if cl.IsEligible(stmt) {
		t.Errorf("Got IsEligible() = true for erroneous declaration, want false")
	}
}

func TestReasonString(t *testing.T) {
	t.Parallel()

	if got, want := ReasonMutated.String(), "variable is written"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Reason(200).String(), "Reason(200)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func newClassifier(tb testing.TB, info *types.Info, root inspector.Cursor) Classifier {
	tb.Helper()

	return Classifier{
		Info:       info,
		Sizes:      testsource.Sizes(),
		Facts:      mutation.Collect(tb.Context(), info, root),
		ShortDecl:  true,
		NamedTypes: true,
	}
}

// findStatement returns the first declaration or assignment statement declaring the named variable.
func findStatement(tb testing.TB, root inspector.Cursor, name string) inspector.Cursor {
	tb.Helper()

	for c := range root.Preorder((*ast.DeclStmt)(nil), (*ast.AssignStmt)(nil)) {
		if slices.Contains(astutil.DeclaredNames(c.Node().(ast.Stmt)), name) {
			return c
		}
	}

	tb.Fatalf("Declaration of %s not found", name)

	return inspector.Cursor{}
}
