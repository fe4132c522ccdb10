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
	"github.com/consensys/go-ccadder/pkg/sweep"
	"go.uber.org/multierr"
)

// Writer receives the result for each width as it is computed.  Results arrive
// in increasing width order.  Close must be called once the sweep is complete,
// at which point any buffered output is flushed.
type Writer interface {
	Write(sweep.Result) error
	Close() error
}

// MultiWriter forwards every result to each of a given set of writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter constructs a writer which fans out to the given writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers}
}

// Write forwards a result to every writer, stopping at the first failure.
func (p *MultiWriter) Write(r sweep.Result) error {
	for _, w := range p.writers {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	//
	return nil
}

// Close closes every writer, combining any errors which arise.
func (p *MultiWriter) Close() error {
	var err error
	//
	for _, w := range p.writers {
		err = multierr.Append(err, w.Close())
	}
	//
	return err
}
