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

func shortDecl() {
	x := 4 // want "Variable 'x' can be declared constant"
	fmt.Println(x)
}

func shortMultiple() {
	width, height := 640, 480 // want "Variables 'width' and 'height' can be declared constant"
	fmt.Println(width * height)
}

func shortRune() {
	r := 'a' // want "Variable 'r' can be declared constant"
	fmt.Println(r)
}

func shortMixed() {
	n, s := 1, "one"
	fmt.Println(n, s)
}

func redeclared() {
	a, err := 1, error(nil)
	b, err := 2, fmt.Errorf("b")
	fmt.Println(a, b, err)
}

func initStatement() {
	if x := 4; x > 2 {
		fmt.Println(x)
	}
}

func caseClause(b bool) {
	switch {
	case b:
		msg := "yes" // want "Variable 'msg' can be declared constant"
		fmt.Println(msg)
	}
}

func functionLiteral() {
	f := func() int {
		n := 42 // want "Variable 'n' can be declared constant"
		return n
	}
	fmt.Println(f())
}

func loopVariable() {
	for i := 0; i < 3; i++ {
		fmt.Println(i)
	}
}

func rangeAssign() {
	k := 0
	for k = range 3 {
	}
	fmt.Println(k)
}
