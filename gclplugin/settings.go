// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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
package gclplugin

import makeconst "fillmore-labs.com/makeconst/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// ShortDecl enables checks of short variable declarations.
	ShortDecl *bool `json:"short-decl,omitzero"`
	// NamedTypes enables checks of variables with defined types.
	NamedTypes *bool `json:"named-types,omitzero"`
}

// Options converts [Settings] into a list of [makeconst.Option] for the makeconst analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []makeconst.Option {
	var opts []makeconst.Option

	opts = appendOption(opts, s.ShortDecl, makeconst.WithShortDecl)
	opts = appendOption(opts, s.NamedTypes, makeconst.WithNamedTypes)

	return opts
}

// appendOption appends a non-nil setting to a [makeconst.Option] list.
func appendOption[T any](opts []makeconst.Option, value *T, constructor func(T) makeconst.Option) []makeconst.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
