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
	"testing"

	"github.com/consensys/go-ccadder/pkg/util"
	"github.com/consensys/go-ccadder/pkg/util/assert"
)

func Test_Vector_00(t *testing.T) {
	v := NewVector(4)
	//
	assert.Equal(t, uint(4), v.Width())
	assert.Equal(t, DefaultCapacity, v.Capacity())
	assert.Equal(t, "0000", v.String())
	assert.Equal(t, uint64(0), v.Uint64())
}

func Test_Vector_01(t *testing.T) {
	v := NewVector(4)
	v.Set(0)
	v.Set(2)
	//
	assert.Equal(t, "1010", v.String())
	assert.Equal(t, uint64(5), v.Uint64())
	assert.Equal(t, uint(2), v.Count())
	//
	v.Clear(0)
	assert.Equal(t, "0010", v.String())
	assert.False(t, v.Get(0))
	assert.True(t, v.Get(2))
	assert.Equal(t, uint(1), v.Bit(2))
}

func Test_Vector_02(t *testing.T) {
	// Bits beyond the width are ignored by String, Count and Equal.
	v := NewVector(2)
	w := NewVector(2)
	v.Set(10)
	//
	assert.Equal(t, "00", v.String())
	assert.Equal(t, uint(0), v.Count())
	assert.True(t, v.Equal(w))
}

func Test_Vector_03(t *testing.T) {
	v := NewVector(64)
	//
	for i := uint(0); i < 64; i++ {
		v.Set(i)
	}
	//
	assert.Equal(t, ^uint64(0), v.Uint64())
}

func Test_Vector_04(t *testing.T) {
	v := NewVector(3)
	v.Set(1)
	w := v.Clone()
	w.Set(0)
	//
	assert.Equal(t, "010", v.String())
	assert.Equal(t, "110", w.String())
	assert.False(t, v.Equal(w))
	assert.False(t, v.Equal(NewVector(4)))
}

func Test_Vector_05(t *testing.T) {
	check_Vector_OutOfBounds(t, func(v *Vector) { v.Get(64) })
	check_Vector_OutOfBounds(t, func(v *Vector) { v.Set(64) })
	check_Vector_OutOfBounds(t, func(v *Vector) { v.Clear(100) })
}

func Test_Vector_06(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil, "expected panic for width beyond capacity")
	}()
	//
	NewVectorWithCapacity(8, 9)
}

func Test_Vector_07(t *testing.T) {
	// Really hammer it.
	for i := 0; i < 1000; i++ {
		check_Vector_SetClear(t, 100, 64)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Vector_OutOfBounds(t *testing.T, fn func(*Vector)) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected out-of-bounds panic")
		}
	}()
	//
	fn(NewVector(8))
}

func check_Vector_SetClear(t *testing.T, n uint, width uint) {
	var (
		v        = NewVector(width)
		model    = make([]bool, width)
		toggles  = util.GenerateRandomUints(n, width)
		settings = util.GenerateRandomUints(n, 2)
	)
	//
	for i, pos := range toggles {
		if settings[i] == 1 {
			v.Set(pos)
			model[pos] = true
		} else {
			v.Clear(pos)
			model[pos] = false
		}
	}
	//
	for pos := uint(0); pos < width; pos++ {
		if v.Get(pos) != model[pos] {
			t.Errorf("unexpected bit at position %d (%v vs %v)", pos, v.Get(pos), model[pos])
		}
	}
}
