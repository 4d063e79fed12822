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

func overflow() {
	var b int8 = 100
	fmt.Println(b * 2)
}

func noOverflow() {
	var b int8 = 100 // want "Variable 'b' can be declared constant"
	fmt.Println(b / 2)
}

func zeroDivisor(n int) {
	zero := 0
	if n > 0 {
		fmt.Println(n / zero)
	}
}

func outOfRange() {
	i := 3
	a := [3]int{1, 2, 3}
	if len(a) > i {
		fmt.Println(a[i])
	}
}

func truncated() {
	big := 300
	fmt.Println(int8(big))
}

func shiftCount() {
	s := 3 // want "Variable 's' can be declared constant"
	fmt.Println(1 << s)
}

func mapLookup(m map[string]int) {
	key := "k" // want "Variable 'key' can be declared constant"
	fmt.Println(m[key])
}

func duplicateCase(n int) {
	one := 1
	switch n {
	case one:
		fmt.Println("one")
	case 1:
		fmt.Println("also one")
	}
}

func maxOverflow() {
	var y int8 = 100
	fmt.Println(max(y, 1) * 2)
}
