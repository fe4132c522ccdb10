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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-ccadder/pkg/adder"
	"github.com/consensys/go-ccadder/pkg/util/collection/bit"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [flags] a b",
	Short: "Simulate a single addition of two bit patterns.",
	Long: `Simulate adding two operands given as patterns of 0s and 1s, where the
	first character is the least significant bit.  Both patterns must have the
	same length.  Reports the sum, the number of cycles and the total delay.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if err := runAdd(os.Stdout, args[0], args[1], GetUint(cmd, "gate-delay"), GetFlag(cmd, "trace")); err != nil {
			fatal(err)
		}
	},
}

func runAdd(out io.Writer, lhs string, rhs string, gateDelay uint, trace bool) error {
	width := uint(len(lhs))
	//
	a, err := adder.OperandFromPattern(width, lhs)
	if err != nil {
		return err
	}
	//
	b, err := adder.OperandFromPattern(width, rhs)
	if err != nil {
		return err
	}
	//
	options := []adder.Option{adder.WithGateDelay(gateDelay)}
	//
	if trace {
		options = append(options, adder.WithObserver(func(cycle uint, carries []adder.CarryState, sum *bit.Vector) {
			fmt.Fprintf(out, "cycle %d: carries %s sum %s\n", cycle, adder.FormatCarries(carries), sum)
		}))
	}
	//
	res, err := adder.NewSimulator(options...).Simulate(a, b)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(out, "a      = %s (%d)\n", a, a.Uint64())
	fmt.Fprintf(out, "b      = %s (%d)\n", b, b.Uint64())
	fmt.Fprintf(out, "sum    = %s (%d)\n", res.Sum, res.Sum.Uint64())
	fmt.Fprintf(out, "cycles = %d\n", res.Cycles)
	fmt.Fprintf(out, "delay  = %d\n", res.Delay)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolP("trace", "t", false, "print carry states after every cycle")
}
