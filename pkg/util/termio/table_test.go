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
package termio

import (
	"strings"
	"testing"

	"github.com/consensys/go-ccadder/pkg/util/assert"
)

func Test_Table_00(t *testing.T) {
	var out strings.Builder
	//
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "bits", "delay")
	table.SetRow(1, "1", "4.000")
	//
	assert.NoError(t, table.Print(&out))
	assert.Equal(t, " bits | delay |\n    1 | 4.000 |\n", out.String())
}

func Test_Table_01(t *testing.T) {
	var out strings.Builder
	// Escapes are ignored unless enabled
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "x")
	table.SetRowEscape(0, BoldAnsiEscape())
	//
	assert.NoError(t, table.Print(&out))
	assert.Equal(t, " x |\n", out.String())
	//
	out.Reset()
	table.AnsiEscapes(true)
	assert.NoError(t, table.Print(&out))
	assert.Equal(t, "\033[1m x\033[0m |\n", out.String())
}

func Test_Escape_00(t *testing.T) {
	assert.True(t, AnsiEscape{}.Empty())
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[1;32m", BoldAnsiEscape().FgColour(TERM_GREEN).Build())
	assert.Equal(t, "\033[36m", AnsiEscape{}.FgColour(TERM_CYAN).Build())
}
