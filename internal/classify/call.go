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

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"unicode/utf8"
)

// callResult folds a call with the constant argument val at position index.
//
// A nil result with ok set means the call is evaluated at run time.
func (cl Classifier) callResult(call *ast.CallExpr, index int, val constant.Value) (constant.Value, bool) {
	tv, ok := cl.Info.Types[call.Fun]
	if !ok {
		return nil, false
	}

	if tv.IsType() {
		return cl.conversion(tv.Type, val)
	}

	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return nil, true
	}

	b, ok := cl.Info.Uses[id].(*types.Builtin)
	if !ok {
		return nil, true
	}

	switch name := b.Name(); name {
	case "make":
		return nil, !isNumeric(val) || constant.Sign(val) >= 0 // make([]T, -1) is a compile error

	case "len":
		if val.Kind() != constant.String {
			return nil, true
		}

		return constant.MakeInt64(int64(len(constant.StringVal(val)))), true

	case "min", "max", "real", "imag", "complex":
		args, ok := cl.constantArgs(call, index, val)
		if !ok {
			return nil, true
		}

		t, ok := cl.basicTypeOf(call)
		if !ok {
			return nil, false
		}

		res := foldBuiltin(name, args)

		return res, res != nil && cl.representable(res, t)

	default:
		return nil, true
	}
}

// constantArgs returns the constant values of all call arguments, substituting val at position index.
func (cl Classifier) constantArgs(call *ast.CallExpr, index int, val constant.Value) ([]constant.Value, bool) {
	if call.Ellipsis.IsValid() {
		return nil, false
	}

	args := make([]constant.Value, len(call.Args))
	for i, arg := range call.Args {
		if i == index {
			args[i] = val

			continue
		}

		v := cl.Info.Types[arg].Value
		if v == nil {
			return nil, false
		}

		args[i] = v
	}

	return args, true
}

// foldBuiltin evaluates a built-in function with constant arguments.
func foldBuiltin(name string, args []constant.Value) constant.Value {
	switch name {
	case "min", "max":
		op := token.LSS
		if name == "max" {
			op = token.GTR
		}

		res := args[0]
		for _, a := range args[1:] {
			if !comparableConstants(a, res) {
				return nil
			}

			if constant.Compare(a, op, res) {
				res = a
			}
		}

		return res

	case "real", "imag":
		if len(args) != 1 || !isNumeric(args[0]) {
			return nil
		}

		if name == "real" {
			return constant.Real(args[0])
		}

		return constant.Imag(args[0])

	case "complex":
		if len(args) != 2 || !isNumeric(args[0]) || !isNumeric(args[1]) {
			return nil
		}

		re, im := constant.ToFloat(args[0]), constant.ToFloat(args[1])

		return constant.BinaryOp(re, token.ADD, constant.MakeImag(im))

	default:
		return nil
	}
}

// conversion folds a conversion of val to type t.
func (cl Classifier) conversion(t types.Type, val constant.Value) (constant.Value, bool) {
	u, ok := t.Underlying().(*types.Basic)
	if !ok || u.Info()&types.IsConstType == 0 {
		return nil, true // conversion to a non-constant type, like []byte(s)
	}

	info := u.Info()

	switch {
	case info&types.IsString != 0:
		switch val.Kind() {
		case constant.String:
			return val, true

		case constant.Int:
			r, ok := constant.Int64Val(val)
			if !ok || r < 0 || r > utf8.MaxRune {
				r = utf8.RuneError
			}

			return constant.MakeString(string(rune(r))), true

		default:
			return nil, true
		}

	case info&types.IsInteger != 0:
		// int(1.5) is truncated
		i := constant.ToInt(val)

		return i, i.Kind() == constant.Int && cl.representable(i, u)

	case info&types.IsFloat != 0:
		f := constant.ToFloat(val)

		return f, cl.representable(f, u)

	case info&types.IsComplex != 0:
		c := constant.ToComplex(val)

		return c, cl.representable(c, u)

	default:
		return val, true
	}
}

func isNumeric(val constant.Value) bool {
	switch val.Kind() {
	case constant.Int, constant.Float, constant.Complex:
		return true

	default:
		return false
	}
}

// comparableConstants reports whether two constants can be compared with [constant.Compare].
func comparableConstants(x, y constant.Value) bool {
	switch {
	case isNumeric(x) && isNumeric(y):
		return true

	case x.Kind() == constant.String, x.Kind() == constant.Bool:
		return x.Kind() == y.Kind()

	default:
		return false
	}
}
