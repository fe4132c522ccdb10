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
	"testing"

	"github.com/consensys/go-ccadder/pkg/util"
	"github.com/consensys/go-ccadder/pkg/util/assert"
	"github.com/consensys/go-ccadder/pkg/util/collection/bit"
)

// ===================================================================
// Fixed Scenarios
// ===================================================================

func Test_Simulate_00(t *testing.T) {
	check_Simulate(t, "1", "0", "1", 2)
}

func Test_Simulate_01(t *testing.T) {
	check_Simulate(t, "000", "000", "000", 2)
}

func Test_Simulate_02(t *testing.T) {
	// All positions differ, so the chain resolves one position per cycle.
	check_Simulate(t, "1010", "0101", "1111", 5)
}

func Test_Simulate_03(t *testing.T) {
	// Generated carry at position 0 ripples through to the top.
	check_Simulate(t, "1000", "1111", "0000", 5)
}

func Test_Simulate_04(t *testing.T) {
	check_Simulate(t, "1", "1", "0", 2)
	check_Simulate(t, "0", "0", "0", 2)
	check_Simulate(t, "0", "1", "1", 2)
}

func Test_Simulate_05(t *testing.T) {
	// Two independent chains resolve in parallel.
	check_Simulate(t, "10101010", "01110111", "11000010", 5)
}

func Test_Simulate_06(t *testing.T) {
	check_Simulate(t, "11111111", "11111111", "01111111", 2)
}

func Test_Simulate_07(t *testing.T) {
	a, _ := OperandFromPattern(3, "100")
	b, _ := OperandFromPattern(2, "01")
	_, err := Simulate(a, b)
	//
	assert.ErrorIs(t, err, ErrWidth)
}

func Test_Simulate_08(t *testing.T) {
	a, _ := OperandFromPattern(4, "1010")
	b, _ := OperandFromPattern(4, "0101")
	res, err := NewSimulator(WithGateDelay(3)).Simulate(a, b)
	//
	assert.NoError(t, err)
	assert.Equal(t, uint(5), res.Cycles)
	assert.Equal(t, uint(15), res.Delay)
}

func Test_Simulate_09(t *testing.T) {
	var trace []string
	//
	a, _ := OperandFromPattern(3, "100")
	b, _ := OperandFromPattern(3, "011")
	sim := NewSimulator(WithObserver(func(cycle uint, carries []CarryState, sum *bit.Vector) {
		trace = append(trace, FormatCarries(carries))
	}))
	res, err := sim.Simulate(a, b)
	//
	assert.NoError(t, err)
	assert.Equal(t, []string{"0??", "00?", "000"}, trace)
	assert.Equal(t, "111", res.Sum.String())
	assert.Equal(t, uint(4), res.Cycles)
}

// ===================================================================
// Properties
// ===================================================================

func Test_Simulate_Width1(t *testing.T) {
	for a := uint64(0); a < 2; a++ {
		for b := uint64(0); b < 2; b++ {
			res := simulateValues(t, 1, a, b)
			assert.Equal(t, 2*GateDelay, res.Delay)
			assert.Equal(t, (a^b) == 1, res.Sum.Get(0))
		}
	}
}

func Test_Simulate_AllEqual(t *testing.T) {
	rng := util.NewRandom(3)
	//
	for width := uint(1); width <= MaxWidth; width++ {
		a, err := RandomOperand(width, rng)
		assert.NoError(t, err)
		//
		res, err := Simulate(a, a.Clone())
		assert.NoError(t, err)
		assert.Equal(t, uint(2), res.Cycles)
		assert.Equal(t, 2*GateDelay, res.Delay)
	}
}

func Test_Simulate_Exhaustive(t *testing.T) {
	for width := uint(1); width <= 6; width++ {
		for a := uint64(0); a < 1<<width; a++ {
			for b := uint64(0); b < 1<<width; b++ {
				check_Properties(t, width, a, b)
			}
		}
	}
}

func Test_Simulate_Random(t *testing.T) {
	rng := util.NewRandom(11)
	//
	for width := uint(1); width <= MaxWidth; width++ {
		for i := 0; i < 100; i++ {
			check_Properties(t, width, rng.Uint64(), rng.Uint64())
		}
	}
}

func Test_Simulate_WorstCase(t *testing.T) {
	// a = 1...1 and b = 0...0 differ everywhere, so every position waits on
	// its neighbour.
	for width := uint(1); width <= MaxWidth; width++ {
		res := simulateValues(t, width, mask(width), 0)
		assert.Equal(t, width+1, res.Cycles, "width %d", width)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Simulate(t *testing.T, a string, b string, sum string, cycles uint) {
	width := uint(len(a))
	opA, err := OperandFromPattern(width, a)
	assert.NoError(t, err)
	opB, err := OperandFromPattern(width, b)
	assert.NoError(t, err)
	//
	res, err := Simulate(opA, opB)
	assert.NoError(t, err)
	//
	if res.Sum.String() != sum {
		t.Errorf("unexpected sum for %s+%s (%s vs %s)", a, b, res.Sum.String(), sum)
	}
	//
	if res.Cycles != cycles {
		t.Errorf("unexpected cycles for %s+%s (%d vs %d)", a, b, res.Cycles, cycles)
	}
	//
	if res.Delay != cycles*GateDelay {
		t.Errorf("unexpected delay for %s+%s (%d vs %d)", a, b, res.Delay, cycles*GateDelay)
	}
}

// Check sum correctness, cycle bounds and the monotonicity of carry states.
func check_Properties(t *testing.T, width uint, a uint64, b uint64) {
	var (
		previous []CarryState
		opA      = toVector(width, a)
		opB      = toVector(width, b)
	)
	//
	sim := NewSimulator(WithObserver(func(cycle uint, carries []CarryState, _ *bit.Vector) {
		for k, c := range carries {
			if previous != nil && previous[k].Resolved() && previous[k] != c {
				t.Errorf("carry %d changed from %s to %s in cycle %d (%x+%x)", k, previous[k], c, cycle, a, b)
			}
		}
		//
		previous = carries
	}))
	//
	res, err := sim.Simulate(opA, opB)
	assert.NoError(t, err)
	//
	if expected := (a + b) & mask(width); res.Sum.Uint64() != expected {
		t.Errorf("incorrect sum for %x+%x (width %d): %x vs %x", a, b, width, res.Sum.Uint64(), expected)
	}
	//
	if res.Cycles < 2 || res.Cycles > width+1 {
		t.Errorf("cycles out of bounds for %x+%x (width %d): %d", a, b, width, res.Cycles)
	}
	//
	for k, c := range previous {
		if !c.Resolved() {
			t.Errorf("carry %d unresolved on completion (%x+%x)", k, a, b)
		}
	}
}

func simulateValues(t *testing.T, width uint, a uint64, b uint64) Result {
	res, err := Simulate(toVector(width, a), toVector(width, b))
	assert.NoError(t, err)
	//
	return res
}

func toVector(width uint, val uint64) *bit.Vector {
	v := bit.NewVector(width)
	//
	for i := uint(0); i < width; i++ {
		if val&(1<<i) != 0 {
			v.Set(i)
		}
	}
	//
	return v
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << width) - 1
}
