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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/makeconst/internal/astutil"
	"fillmore-labs.com/makeconst/internal/classify"
	"fillmore-labs.com/makeconst/internal/config"
	"fillmore-labs.com/makeconst/internal/mutation"
	"fillmore-labs.com/makeconst/internal/report"
	"fillmore-labs.com/makeconst/internal/rewrite"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the makeconst analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("makeconst: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "MakeConst")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		r.checkFile(ctx, p, currentFile, f)
	}

	return nil, nil
}

// checkFile reports all local declarations in a file that can be constant.
func (r *Options) checkFile(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, f inspector.Cursor) {
	// Stage 1: Collect writes and uses of all variables in this file
	facts := mutation.Collect(ctx, p.TypesInfo, f)

	cl := classify.Classifier{
		Info:       p.TypesInfo,
		Sizes:      p.TypesSizes,
		Facts:      facts,
		ShortDecl:  r.Behavior.Enabled(config.ShortDecl),
		NamedTypes: r.Behavior.Enabled(config.NamedTypes),
	}

	rep := report.Reporter{
		Pass:     p,
		Rewriter: rewrite.Rewriter{Info: p.TypesInfo, Pkg: p.Pkg, File: currentFile.File()},
		NoFixes:  currentFile.Generated(),
	}

	defer trace.StartRegion(ctx, "Classify").End()

	filter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.DeclStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	// Stage 2: Classify all declarations, including those in function literals
	f.Inspect(filter, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment
			return n.Body != nil && !astutil.DocHasNoLint(n.Doc)

		case ast.Stmt:
			if !cl.IsEligible(c) || currentFile.NoLintComment(n.End()) {
				return true
			}

			// Stage 3: Generate the diagnostic with suggested fix
			rep.Report(ctx, n)
		}

		return true
	})
}
