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
	"bufio"
	"fmt"
	"os"

	"github.com/consensys/go-ccadder/pkg/sweep"
	"go.uber.org/multierr"
)

// DefaultFilename is the file to which average delays are written by default.
const DefaultFilename = "run.txt"

// FileWriter records the average delay of each width, one per line, in a form
// suitable for importing into a spreadsheet.  Nothing is written until the
// writer is closed.
type FileWriter struct {
	filename string
	averages []float64
}

// NewFileWriter constructs a writer for a given file, which is created (or
// truncated) when the writer is closed.
func NewFileWriter(filename string) *FileWriter {
	return &FileWriter{filename, nil}
}

// Filename returns the file being written.
func (p *FileWriter) Filename() string {
	return p.filename
}

// Write records the average delay for a given width.
func (p *FileWriter) Write(r sweep.Result) error {
	p.averages = append(p.averages, r.Average)
	//
	return nil
}

// Close writes all recorded averages to the file.
func (p *FileWriter) Close() (err error) {
	file, err := os.Create(p.filename)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	//
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	//
	writer := bufio.NewWriter(file)
	//
	for _, avg := range p.averages {
		if _, err := fmt.Fprintf(writer, "%.3f\n", avg); err != nil {
			return fmt.Errorf("cannot write output file: %w", err)
		}
	}
	//
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	//
	return nil
}
