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
	tm "time"
)

type Celsius float64

type Counter int

func (c *Counter) Inc() { *c++ }

func (c Counter) Value() int { return int(c) }

func definedType() {
	var t Celsius = 21.5 // want "Variable 't' can be declared constant"
	fmt.Println(t)
}

func inferredDefinedType() {
	t := Celsius(21.5) // want "Variable 't' can be declared constant"
	fmt.Println(t)
}

func renamedImport() {
	timeout := 5 * tm.Second // want "Variable 'timeout' can be declared constant"
	fmt.Println(timeout)
}

func pointerMethod() {
	c := Counter(1)
	c.Inc()
	fmt.Println(c)
}

func valueMethod() {
	c := Counter(1) // want "Variable 'c' can be declared constant"
	fmt.Println(c.Value())
}

func aliasedType() {
	type Small = int8
	s := Small(7) // want "Variable 's' can be declared constant"
	fmt.Println(s)
}
