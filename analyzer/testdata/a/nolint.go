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
package a

import "fmt"

func trailingNoLint() {
	x := 1 //nolint:makeconst
	fmt.Println(x)
}

func allNoLint() {
	var y = 2 //nolint:all
	fmt.Println(y)
}

// functionNoLint is ignored.
//
//nolint:makeconst
func functionNoLint() {
	z := 3
	fmt.Println(z)
}

func otherLinter() {
	w := 4 //nolint:gosec // want "Variable 'w' can be declared constant"
	fmt.Println(w)
}
