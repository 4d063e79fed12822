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

import (
	"fmt"
	"time"
)

func explicitType() {
	var i int = 0 // want "Variable 'i' can be declared constant"
	fmt.Println(i)
}

func partiallyConstant() {
	var i, j int = 0, time.Now().YearDay()
	fmt.Println(i, j)
}

func inferredType() {
	var item = 4 // want "Variable 'item' can be declared constant"
	fmt.Println(item)
}

func incremented() {
	var i int = 0
	i++
	fmt.Println(i)
}

func stringType() {
	var s string = "abc" // want "Variable 's' can be declared constant"
	fmt.Println(s)
}

func interfaceType() {
	var s any = "abc"
	fmt.Println(s)
}

func noInitializer() {
	var i int
	i = 0
	fmt.Println(i)
}

func alreadyConstant() {
	const i = 0
	fmt.Println(i)
}

func multipleNames() {
	var a, b = 1, 2 // want "Variables 'a' and 'b' can be declared constant"
	fmt.Println(a + b)
}

func mixedTypes() {
	var a, b = 1, "two"
	fmt.Println(a, b)
}

func grouped() {
	var ( // want "Variables 'x' and 'y' can be declared constant"
		x = 1.5
		y = "y"
	)
	fmt.Println(x, y)
}

func commented() {
	var answer = 42 // want "Variable 'answer' can be declared constant"
	fmt.Println(answer)
}

func assignedInClosure() {
	var n = 1
	func() { n = 2 }()
	fmt.Println(n)
}

func addressTaken() {
	var n = 1
	p := &n
	fmt.Println(*p)
}
