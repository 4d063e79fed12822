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

package report

import (
	"context"
	"errors"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/astutil"
	"fillmore-labs.com/makeconst/internal/rewrite"
)

// Category is the stable rule identifier attached to all diagnostics.
const Category = "makeconst"

// Reporter emits diagnostics for the declarations of one file.
type Reporter struct {
	Pass     *analysis.Pass
	Rewriter rewrite.Rewriter

	// NoFixes suppresses suggested fixes, e.g. for generated files.
	NoFixes bool
}

// Report emits a diagnostic for an eligible declaration statement.
//
// A suggested fix converting the declaration into a constant declaration is attached
// when the replacement can be spelled in the current file.
func (r Reporter) Report(ctx context.Context, stmt ast.Stmt) {
	defer trace.StartRegion(ctx, "Report").End()

	names := astutil.DeclaredNames(stmt)

	diagnostic := analysis.Diagnostic{
		Pos:      stmt.Pos(),
		End:      stmt.End(),
		Category: Category,
		Message:  Message(names),
	}

	if !r.NoFixes {
		diagnostic.SuggestedFixes = r.suggestedFixes(stmt, names)
	}

	r.Pass.Report(diagnostic)
}

func (r Reporter) suggestedFixes(stmt ast.Stmt, names []string) []analysis.SuggestedFix {
	repl, err := r.Rewriter.MakeConstant(stmt)
	if err != nil {
		if !errors.Is(err, rewrite.ErrUnqualifiable) {
			astutil.InternalError(r.Pass, stmt, "Can't rewrite %s: %v", astutil.Describe(stmt), err)
		}

		return nil
	}

	edits, err := r.Rewriter.TextEdits(stmt, repl)
	if err != nil {
		astutil.InternalError(r.Pass, stmt, "Can't edit %s: %v", astutil.Describe(stmt), err)

		return nil
	}

	return []analysis.SuggestedFix{{Message: FixMessage(names), TextEdits: edits}}
}
