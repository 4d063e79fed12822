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
package config

// Behavior holds the enabled [Config] options.
type Behavior struct {
	enabled Config
}

// NewBehavior returns a [Behavior] with the given options enabled.
func NewBehavior(options ...Config) Behavior {
	var b Behavior
	for _, o := range options {
		b.enabled |= o
	}

	return b
}

// Set enables or disables option.
func (b *Behavior) Set(option Config, value bool) {
	if value {
		b.enabled |= option
	} else {
		b.enabled &^= option
	}
}

// Enabled reports whether option is enabled.
func (b Behavior) Enabled(option Config) bool {
	return b.enabled&option != 0
}
