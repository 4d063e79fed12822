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

// Reason indicates whether a declaration can be made constant and why not.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// ReasonEligible indicates the declaration can be made constant.
	ReasonEligible Reason = iota // eligible

	// ReasonNotDeclaration indicates the statement declares no variables.
	ReasonNotDeclaration // not a variable declaration

	// ReasonConstant indicates the declaration is already constant.
	ReasonConstant // already constant

	// ReasonNotStatement indicates the declaration is not part of a statement list, like an if init statement.
	ReasonNotStatement // not in a statement list

	// ReasonRedeclared indicates a short variable declaration assigns to a previously declared variable.
	ReasonRedeclared // redeclares a variable

	// ReasonBlank indicates the declaration contains a blank identifier.
	ReasonBlank // declares a blank identifier

	// ReasonNoInitializer indicates a declarator has no initializer of its own.
	ReasonNoInitializer // missing initializer

	// ReasonUnresolved indicates missing or inconsistent type information, usually from a compile error.
	ReasonUnresolved // unresolved

	// ReasonNotConstant indicates an initializer is not a compile-time constant.
	ReasonNotConstant // initializer not constant

	// ReasonType indicates the variable's type can't be the type of a constant.
	ReasonType // type not allowed

	// ReasonMixedTypes indicates inferred types differ between declarators that would share a const spec.
	ReasonMixedTypes // mixed inferred types

	// ReasonMutated indicates a variable is written or has its address taken.
	ReasonMutated // variable is written

	// ReasonFolding indicates that folding a use into a constant expression would not compile.
	ReasonFolding // constant folding fails
)

// Eligible indicates the declaration can be made constant.
func (i Reason) Eligible() bool { return i == ReasonEligible }
