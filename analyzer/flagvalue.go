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
package analyzer

import (
	"strconv"

	"fillmore-labs.com/makeconst/internal/config"
)

// behaviorValue is a boolean [flag.Value] toggling a single [config.Config] bit.
type behaviorValue struct {
	behavior *config.Behavior
	bit      config.Config
}

func newBehaviorValue(behavior *config.Behavior, bit config.Config) behaviorValue {
	return behaviorValue{behavior: behavior, bit: bit}
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.bit, b)

	return nil
}

// String implements [flag.Value]. The flag package calls it on a zero value to detect defaults.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any { return v.enabled() }

// IsBoolFlag marks the value as a boolean flag, so -short-decl works without an argument.
func (v behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.bit)
}

// parseBool accepts the [strconv.ParseBool] spellings and "on" or "off".
func parseBool(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(s)
}
