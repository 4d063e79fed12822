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

// Package analyzer implements the makeconst static analysis pass.
//
// # Overview
//
// MakeConst detects local variables that are initialized with a compile-time constant
// and never written, so they can be declared constant instead.
//
// # Example
//
// Before:
//
//	func area(r float64) float64 {
//	    var pi = 3.14159  // never modified
//	    return pi * r * r
//	}
//
// After applying makeconst's suggested fix:
//
//	func area(r float64) float64 {
//	    const pi float64 = 3.14159
//	    return pi * r * r
//	}
//
// Inferred types are spelled out, so the constant keeps the variable's type.
// Short variable declarations (x := 4) are converted, too.
//
// # Exclusions
//
// A declaration is not reported when any of its variables is assigned, incremented,
// has its address taken or calls a pointer method. Declarations whose constant
// would make surrounding expressions fail to compile, like an overflowing
// multiplication, are also kept.
//
// Declarations followed by a //nolint:makeconst comment are ignored, as are
// functions and files with such a comment as the last line of their doc comment.
package analyzer
