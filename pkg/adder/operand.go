// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package adder

import (
	"math/rand/v2"

	"github.com/consensys/go-ccadder/pkg/util/collection/bit"
)

// MaxWidth is the largest operand width supported.
const MaxWidth = bit.DefaultCapacity

// RandomOperand generates an operand of the given width, where each bit is
// independently set with probability 1/2 using the given source.
func RandomOperand(width uint, rng *rand.Rand) (*bit.Vector, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	//
	op := bit.NewVector(width)
	//
	for pos := uint(0); pos < width; pos++ {
		if rng.IntN(2) == 1 {
			op.Set(pos)
		}
	}
	//
	return op, nil
}

// OperandFromPattern constructs an operand from a literal string of '0' and
// '1' characters.  The first character gives position 0 (i.e. the least
// significant bit), hence "100" has the value 1.
func OperandFromPattern(width uint, pattern string) (*bit.Vector, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	} else if uint(len(pattern)) != width {
		return nil, NewConfigError(ErrInvalidPattern, "pattern \"%s\" has %d characters, expected %d",
			pattern, len(pattern), width)
	}
	//
	op := bit.NewVector(width)
	//
	for pos := uint(0); pos < width; pos++ {
		switch pattern[pos] {
		case '1':
			op.Set(pos)
		case '0':
		default:
			return nil, NewConfigError(ErrInvalidPattern, "pattern \"%s\" has unexpected character '%c' at %d",
				pattern, pattern[pos], pos)
		}
	}
	//
	return op, nil
}

func checkWidth(width uint) error {
	if width == 0 {
		return NewConfigError(ErrWidth, "width must be at least 1")
	} else if width > MaxWidth {
		return NewConfigError(ErrWidth, "width %d exceeds maximum of %d", width, MaxWidth)
	}
	//
	return nil
}
