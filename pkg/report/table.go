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
	"github.com/consensys/go-ccadder/pkg/util/termio"
)

// TableWriter prints all results as a single table once the sweep completes.
// Maximum cycle counts which reach the upper bound for their width are
// highlighted when escapes are enabled.
type TableWriter struct {
	out     io.Writer
	escapes bool
	results []sweep.Result
}

// NewTableWriter constructs a table writer printing to a given output, with
// or without ANSI escapes.
func NewTableWriter(out io.Writer, escapes bool) *TableWriter {
	return &TableWriter{out, escapes, nil}
}

// Write records a result.
func (p *TableWriter) Write(r sweep.Result) error {
	p.results = append(p.results, r)
	//
	return nil
}

// Close prints the table.
func (p *TableWriter) Close() error {
	var (
		n     = uint(len(p.results))
		table = termio.NewTablePrinter(4, n+1)
		worst = uint(0)
	)
	//
	table.SetRow(0, "bits", "average", "min", "max")
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	//
	for i, r := range p.results {
		row := uint(i) + 1
		table.SetRow(row, fmt.Sprintf("%d", r.Width), fmt.Sprintf("%.3f", r.Average),
			fmt.Sprintf("%d", r.MinCycles), fmt.Sprintf("%d", r.MaxCycles))
		//
		if r.MaxCycles == r.Width+1 {
			// Trial hit the theoretical upper bound
			table.SetEscape(3, row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
		}
		//
		worst = max(worst, r.MaxCycles)
	}
	//
	table.AnsiEscapes(p.escapes)
	//
	if err := table.Print(p.out); err != nil {
		return err
	}
	//
	_, err := fmt.Fprintf(p.out, "worst case: %d cycles\n", worst)
	//
	return err
}
