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
package bit

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DefaultCapacity is the capacity of a vector constructed with NewVector.
const DefaultCapacity = uint(64)

// Vector is a fixed-capacity sequence of bits, indexed from position 0 (the
// least significant position) upwards.  A vector has a logical width which
// never exceeds its capacity.  Only positions below the width are considered
// when rendering or comparing vectors, though any position below the capacity
// can be read or written.  Accessing a position at or beyond the capacity is a
// programming error and panics.
type Vector struct {
	width    uint
	capacity uint
	bits     *bitset.BitSet
}

// NewVector constructs an all-zero vector of the given width using the default
// capacity.
func NewVector(width uint) *Vector {
	return NewVectorWithCapacity(DefaultCapacity, width)
}

// NewVectorWithCapacity constructs an all-zero vector of the given width and
// capacity.
func NewVectorWithCapacity(capacity uint, width uint) *Vector {
	if width > capacity {
		panic(fmt.Sprintf("vector width %d exceeds capacity %d", width, capacity))
	}
	//
	return &Vector{width, capacity, bitset.New(capacity)}
}

// Width returns the logical width of this vector.
func (p *Vector) Width() uint {
	return p.width
}

// Capacity returns the maximum width this vector can hold.
func (p *Vector) Capacity() uint {
	return p.capacity
}

// Get returns the bit at a given position.
func (p *Vector) Get(pos uint) bool {
	p.checkBounds(pos)
	//
	return p.bits.Test(pos)
}

// Bit returns the bit at a given position as either 0 or 1.
func (p *Vector) Bit(pos uint) uint {
	if p.Get(pos) {
		return 1
	}
	//
	return 0
}

// Set the bit at a given position to 1.
func (p *Vector) Set(pos uint) {
	p.checkBounds(pos)
	p.bits.Set(pos)
}

// Clear the bit at a given position to 0.
func (p *Vector) Clear(pos uint) {
	p.checkBounds(pos)
	p.bits.Clear(pos)
}

// SetTo assigns the bit at a given position.
func (p *Vector) SetTo(pos uint, val bool) {
	if val {
		p.Set(pos)
	} else {
		p.Clear(pos)
	}
}

// Count returns the number of bits set within the logical width.
func (p *Vector) Count() uint {
	count := uint(0)
	//
	for i := uint(0); i < p.width; i++ {
		if p.bits.Test(i) {
			count++
		}
	}
	//
	return count
}

// Uint64 returns the unsigned value of the lowest (up to) 64 positions of this
// vector, where position 0 is the least significant bit.
func (p *Vector) Uint64() uint64 {
	var val uint64
	//
	for i := min(p.width, 64); i > 0; i-- {
		val = val << 1
		//
		if p.bits.Test(i - 1) {
			val = val | 1
		}
	}
	//
	return val
}

// Equal determines whether two vectors have the same width and the same bits
// within that width.
func (p *Vector) Equal(other *Vector) bool {
	if p.width != other.width {
		return false
	}
	//
	for i := uint(0); i < p.width; i++ {
		if p.bits.Test(i) != other.bits.Test(i) {
			return false
		}
	}
	//
	return true
}

// Clone creates a true copy of this vector which ensures no aliasing between
// this vector and the result.
func (p *Vector) Clone() *Vector {
	return &Vector{p.width, p.capacity, p.bits.Clone()}
}

// String renders positions 0..width-1 of this vector as '0' and '1'
// characters, with position 0 first.
func (p *Vector) String() string {
	var builder strings.Builder
	//
	for i := uint(0); i < p.width; i++ {
		if p.bits.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String()
}

func (p *Vector) checkBounds(pos uint) {
	if pos >= p.capacity {
		panic(fmt.Sprintf("bit position %d out of bounds (capacity %d)", pos, p.capacity))
	}
}
