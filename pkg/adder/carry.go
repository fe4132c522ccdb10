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

// CarryState captures what is known about the carry out of a given bit
// position, using a two-rail encoding.  That is, a carry is either not yet
// known, known to be 0 or known to be 1.  A position only ever moves from
// Undetermined to one of the determined states, and never back again.
type CarryState uint8

const (
	// Undetermined indicates the carry out of a position depends on a carry in
	// which is not yet known.
	Undetermined CarryState = iota
	// Carry0 indicates the position is known to produce no carry.
	Carry0
	// Carry1 indicates the position is known to produce a carry.
	Carry1
)

// Resolved checks whether or not this carry has been determined.
func (c CarryState) Resolved() bool {
	return c != Undetermined
}

// Bit returns the carry as 0 or 1, where an undetermined carry is treated as 0.
func (c CarryState) Bit() uint {
	if c == Carry1 {
		return 1
	}
	//
	return 0
}

func (c CarryState) String() string {
	switch c {
	case Carry0:
		return "0"
	case Carry1:
		return "1"
	default:
		return "?"
	}
}

// FormatCarries renders a sequence of carry states with position 0 first.
func FormatCarries(states []CarryState) string {
	bytes := make([]byte, len(states))
	//
	for i, c := range states {
		bytes[i] = c.String()[0]
	}
	//
	return string(bytes)
}
