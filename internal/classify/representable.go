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
	"go/constant"
	"go/token"
	"go/types"
	"math"
)

var defaultSizes = types.SizesFor("gc", "amd64")

// representable reports whether the constant value fits the basic type t.
func (cl Classifier) representable(val constant.Value, t *types.Basic) bool {
	if val.Kind() == constant.Unknown {
		return false
	}

	info := t.Info()

	switch {
	case info&types.IsUntyped != 0:
		return true // arbitrary precision

	case info&types.IsInteger != 0:
		i := constant.ToInt(val)
		if i.Kind() != constant.Int {
			return false
		}

		bits := cl.bits(t)
		if info&types.IsUnsigned != 0 {
			return constant.Sign(i) >= 0 && constant.BitLen(i) <= bits
		}

		limit := constant.Shift(constant.MakeInt64(1), token.SHL, uint(bits-1))

		return constant.Compare(i, token.GEQ, constant.UnaryOp(token.SUB, limit, 0)) &&
			constant.Compare(i, token.LSS, limit)

	case info&types.IsFloat != 0:
		return floatFits(val, t.Kind() == types.Float32)

	case info&types.IsComplex != 0:
		c := constant.ToComplex(val)
		if c.Kind() != constant.Complex {
			return false
		}

		single := t.Kind() == types.Complex64

		return floatFits(constant.Real(c), single) && floatFits(constant.Imag(c), single)

	case info&types.IsString != 0:
		return val.Kind() == constant.String

	case info&types.IsBoolean != 0:
		return val.Kind() == constant.Bool

	default:
		return false
	}
}

// floatFits reports whether a numeric constant is finite in float32 or float64 precision.
func floatFits(val constant.Value, single bool) bool {
	f := constant.ToFloat(val)
	if f.Kind() != constant.Float && f.Kind() != constant.Int {
		return false
	}

	if single {
		v, _ := constant.Float32Val(f)

		return !math.IsInf(float64(v), 0)
	}

	v, _ := constant.Float64Val(f)

	return !math.IsInf(v, 0)
}

// bits returns the size of an integer type in bits.
func (cl Classifier) bits(t *types.Basic) int {
	sizes := cl.Sizes
	if sizes == nil {
		sizes = defaultSizes
	}

	return int(8 * sizes.Sizeof(t))
}
