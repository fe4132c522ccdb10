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
package sweep

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/consensys/go-ccadder/pkg/adder"
	"github.com/consensys/go-ccadder/pkg/util"
	log "github.com/sirupsen/logrus"
)

// MaxBits is the default largest width swept.
const MaxBits = uint(64)

// MaxRuns is the default number of trials per width.
const MaxRuns = uint(1000)

// Config determines the shape of a sweep.
type Config struct {
	// Largest width to simulate, where widths 1..MaxBits are swept.
	MaxBits uint
	// Number of trials for each width.
	MaxRuns uint
	// Delay charged per cycle.
	GateDelay uint
	// Seed for the random source used to generate operands.
	Seed uint64
}

// DefaultConfig returns the standard sweep configuration using a given seed.
func DefaultConfig(seed uint64) Config {
	return Config{MaxBits, MaxRuns, adder.GateDelay, seed}
}

// Validate checks this configuration makes sense.
func (c Config) Validate() error {
	if c.MaxBits == 0 || c.MaxBits > adder.MaxWidth {
		return adder.NewConfigError(adder.ErrWidth, "number of bits must be between 1 and %d (was %d)",
			adder.MaxWidth, c.MaxBits)
	} else if c.MaxRuns == 0 {
		return adder.NewConfigError(nil, "number of runs must be at least 1")
	}
	//
	return nil
}

// Result summarises the trials for a given width.
type Result struct {
	// Width of the operands.
	Width uint
	// Average delay over all trials.
	Average float64
	// Fewest cycles observed in any trial.
	MinCycles uint
	// Most cycles observed in any trial.
	MaxCycles uint
}

func (r Result) String() string {
	return fmt.Sprintf("%d bits: %.3f [%d..%d cycles]", r.Width, r.Average, r.MinCycles, r.MaxCycles)
}

// Sink receives results as they are computed.
type Sink interface {
	Write(Result) error
}

// Runner repeatedly simulates random additions to determine the average delay
// of the adder for each width.  Trials are run one after another, sharing a
// single random source.
type Runner struct {
	config Config
	rng    *rand.Rand
	sim    *adder.Simulator
}

// NewRunner constructs a runner for a given configuration.
func NewRunner(config Config) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	//
	sim := adder.NewSimulator(adder.WithGateDelay(config.GateDelay))
	//
	return &Runner{config, util.NewRandom(config.Seed), sim}, nil
}

// Run sweeps all widths from 1 upto the configured maximum, forwarding each
// result to the sink (if given) as soon as it is available.
func (p *Runner) Run(sink Sink) ([]Result, error) {
	var (
		results = make([]Result, 0, p.config.MaxBits)
		stats   = util.NewPerfStats()
	)
	//
	log.Debugf("sweeping widths 1..%d with %d runs (seed %d)", p.config.MaxBits, p.config.MaxRuns, p.config.Seed)
	//
	for width := uint(1); width <= p.config.MaxBits; width++ {
		res, err := p.RunWidth(width)
		if err != nil {
			return results, err
		}
		//
		log.Debug(res.String())
		//
		results = append(results, res)
		//
		if sink != nil {
			if err := sink.Write(res); err != nil {
				return results, err
			}
		}
	}
	//
	stats.Log("Sweep")
	//
	return results, nil
}

// RunWidth runs the configured number of trials for a single width.
func (p *Runner) RunWidth(width uint) (Result, error) {
	var (
		total     uint64
		minCycles = uint(math.MaxUint)
		maxCycles = uint(0)
	)
	//
	for run := uint(0); run < p.config.MaxRuns; run++ {
		a, err := adder.RandomOperand(width, p.rng)
		if err != nil {
			return Result{}, err
		}
		//
		b, err := adder.RandomOperand(width, p.rng)
		if err != nil {
			return Result{}, err
		}
		//
		res, err := p.sim.Simulate(a, b)
		if err != nil {
			return Result{}, err
		}
		//
		total += uint64(res.Delay)
		minCycles = min(minCycles, res.Cycles)
		maxCycles = max(maxCycles, res.Cycles)
	}
	//
	average := float64(total) / float64(p.config.MaxRuns)
	//
	return Result{width, average, minCycles, maxCycles}, nil
}
