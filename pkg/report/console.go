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
package report

import (
	"fmt"
	"io"

	"github.com/consensys/go-ccadder/pkg/sweep"
)

// ConsoleWriter prints a human-readable summary of each width.
type ConsoleWriter struct {
	out io.Writer
}

// NewConsoleWriter constructs a console writer printing to a given output.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out}
}

// Write prints the width and its average delay.
func (p *ConsoleWriter) Write(r sweep.Result) error {
	_, err := fmt.Fprintf(p.out, "Number of bits: %d\nAverage Delay = %.3f\n", r.Width, r.Average)
	//
	return err
}

// Close does nothing.
func (p *ConsoleWriter) Close() error {
	return nil
}
