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
	"errors"
	"fmt"
)

// ErrWidth indicates an operand width of zero, a width beyond the capacity of
// a bit vector, or operands of differing widths.
var ErrWidth = errors.New("invalid operand width")

// ErrInvalidPattern indicates a literal operand pattern whose length does not
// match the requested width, or which contains characters other than '0' and
// '1'.
var ErrInvalidPattern = errors.New("invalid operand pattern")

// ConfigError is returned when a simulation (or sweep) is misconfigured.  Such
// errors are always detected before any simulation begins.
type ConfigError struct {
	// Message describing the problem.
	Message string
	// Underlying cause, which is one of the sentinel errors above (or nil).
	Err error
}

// NewConfigError constructs a configuration error with a formatted message and
// a given cause.
func NewConfigError(cause error, format string, args ...any) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, args...), cause}
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	//
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

// Unwrap returns the underlying cause of this error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
