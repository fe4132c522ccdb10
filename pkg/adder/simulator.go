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
	"slices"

	"github.com/consensys/go-ccadder/pkg/util/collection/bit"
)

// GateDelay is the delay charged for each cycle, representing two logic gate
// propagation delays.
const GateDelay = uint(2)

// Result captures the outcome of simulating a single addition.
type Result struct {
	// Sum of the two operands, modulo 2^width.
	Sum *bit.Vector
	// Number of cycles executed, including the final carry-complete cycle.
	Cycles uint
	// Total delay, which is Cycles * gate delay.
	Delay uint
}

// Observer is notified with a snapshot of the carry states and sum at the end
// of every propagation cycle.  The arguments are copies and can be retained.
type Observer func(cycle uint, carries []CarryState, sum *bit.Vector)

// Option configures a Simulator.
type Option func(*Simulator)

// WithGateDelay overrides the delay charged per cycle.
func WithGateDelay(delay uint) Option {
	return func(p *Simulator) {
		p.gateDelay = delay
	}
}

// WithObserver registers an observer of each propagation cycle.
func WithObserver(observer Observer) Option {
	return func(p *Simulator) {
		p.observer = observer
	}
}

// Simulator determines the time taken by a carry-completion adder to add two
// operands.  A simulator holds no state between additions and can be reused.
type Simulator struct {
	gateDelay uint
	observer  Observer
}

// NewSimulator constructs a simulator with the given options.
func NewSimulator(options ...Option) *Simulator {
	sim := &Simulator{gateDelay: GateDelay}
	//
	for _, opt := range options {
		opt(sim)
	}
	//
	return sim
}

// Simulate adds two operands using the default simulator.
func Simulate(a, b *bit.Vector) (Result, error) {
	return NewSimulator().Simulate(a, b)
}

// Simulate adds two operands of equal width, determining the number of cycles
// until every carry is resolved.
func (p *Simulator) Simulate(a, b *bit.Vector) (Result, error) {
	if a.Width() != b.Width() {
		return Result{}, NewConfigError(ErrWidth, "operand widths differ (%d vs %d)", a.Width(), b.Width())
	} else if err := checkWidth(a.Width()); err != nil {
		return Result{}, err
	}
	//
	t := newTrial(a, b)
	// Generate and kill carries, and resolve the position without carry in.
	t.initialise()
	cycles := uint(1)
	p.notify(cycles, t)
	// Propagate carries until completion
	for t.resolved() < t.width {
		cycles++
		//
		if t.propagate() == 0 {
			// Should be impossible, since the lowest undetermined position
			// always has a determined carry in.
			panic("carry propagation stalled")
		}
		//
		p.notify(cycles, t)
	}
	// Carry complete signal
	t.finalise()
	cycles++
	//
	return Result{t.sum, cycles, cycles * p.gateDelay}, nil
}

func (p *Simulator) notify(cycle uint, t *trial) {
	if p.observer != nil {
		p.observer(cycle, slices.Clone(t.carries), t.sum.Clone())
	}
}

// ============================================================================
// Trial
// ============================================================================

// trial holds the state of a single addition.  Position k's carry state
// describes the carry out of k, which is the carry into k+1.  Position 0 has
// no carry in.
type trial struct {
	width   uint
	a, b    *bit.Vector
	carries []CarryState
	sum     *bit.Vector
}

func newTrial(a, b *bit.Vector) *trial {
	width := a.Width()
	//
	return &trial{width, a, b, make([]CarryState, width), bit.NewVector(width)}
}

// initialise performs the first cycle.  Positions with equal bits either
// generate or kill a carry, regardless of their carry in.  Positions with
// differing bits propagate their carry in, so are only known for position 0.
// The provisional sum assumes every carry in is 0.
func (t *trial) initialise() {
	for k := uint(0); k < t.width; k++ {
		ak, bk := t.a.Get(k), t.b.Get(k)
		//
		switch {
		case ak && bk:
			t.carries[k] = Carry1
		case !ak && !bk:
			t.carries[k] = Carry0
		case k == 0:
			t.carries[k] = Carry0
		}
		//
		t.sum.SetTo(k, ak != bk)
	}
}

// propagate performs one propagation cycle, returning the number of positions
// resolved.  Both sum bits and resolutions are computed from the carry states
// as they were at the start of the cycle, hence a run of undetermined
// positions shrinks by at most one position per cycle.
func (t *trial) propagate() uint {
	var (
		start = slices.Clone(t.carries)
		count = uint(0)
	)
	//
	t.computeSum(start)
	//
	for k := nextUndetermined(start, 0); k < t.width; k = nextUndetermined(start, k+1) {
		// Undetermined positions have differing bits, so propagate their carry in.
		switch carryIn(start, k) {
		case Carry1:
			t.carries[k] = Carry1
			count++
		case Carry0:
			t.carries[k] = Carry0
			count++
		}
	}
	//
	return count
}

// finalise recomputes the sum once every carry is known.
func (t *trial) finalise() {
	t.computeSum(t.carries)
}

func (t *trial) computeSum(carries []CarryState) {
	for k := uint(0); k < t.width; k++ {
		cin := carryIn(carries, k) == Carry1
		t.sum.SetTo(k, t.a.Get(k) != t.b.Get(k) != cin)
	}
}

// resolved counts the number of positions whose carry is known.
func (t *trial) resolved() uint {
	count := uint(0)
	//
	for _, c := range t.carries {
		if c.Resolved() {
			count++
		}
	}
	//
	return count
}

// carryIn returns the carry into a given position, where nothing is carried
// into position 0.
func carryIn(carries []CarryState, k uint) CarryState {
	if k == 0 {
		return Carry0
	}
	//
	return carries[k-1]
}

// nextUndetermined returns the first undetermined position at or after k, or
// the number of positions if there is none.
func nextUndetermined(carries []CarryState, k uint) uint {
	for ; k < uint(len(carries)); k++ {
		if !carries[k].Resolved() {
			return k
		}
	}
	//
	return uint(len(carries))
}
