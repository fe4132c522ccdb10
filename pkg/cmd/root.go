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
	"os"
	"runtime/debug"
	"time"

	"github.com/consensys/go-ccadder/pkg/adder"
	"github.com/consensys/go-ccadder/pkg/report"
	"github.com/consensys/go-ccadder/pkg/sweep"
	"github.com/consensys/go-ccadder/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ccadder",
	Short: "A timing simulator for carry-completion adders.",
	Long: `Simulate random additions on a carry-completion adder for every width
	from 1 upto a given number of bits, reporting the average delay until carry
	completion for each width.  Average delays are also written (one per line)
	to an output file for use with spreadsheets.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}
		//
		configureLogging(cmd)
		//
		if err := runSweep(cmd); err != nil {
			fatal(err)
		}
	},
}

func printVersion() {
	fmt.Print("ccadder ")

	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}

	fmt.Println()
}

func runSweep(cmd *cobra.Command) error {
	config := sweep.Config{
		MaxBits:   GetUint(cmd, "bits"),
		MaxRuns:   GetUint(cmd, "runs"),
		GateDelay: GetUint(cmd, "gate-delay"),
		Seed:      GetUint64(cmd, "seed"),
	}
	// Seed from the clock unless told otherwise
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	//
	runner, err := sweep.NewRunner(config)
	if err != nil {
		return err
	}
	//
	writer := report.NewMultiWriter(configureWriters(cmd)...)
	//
	if _, err := runner.Run(writer); err != nil {
		// Still close the writers, but report the original failure.
		_ = writer.Close()
		return err
	}
	//
	if err := writer.Close(); err != nil {
		return err
	}
	//
	log.Debugf("wrote average delays to %s", GetString(cmd, "output"))
	//
	return nil
}

func configureWriters(cmd *cobra.Command) []report.Writer {
	var writers []report.Writer
	//
	if !GetFlag(cmd, "quiet") {
		writers = append(writers, report.NewConsoleWriter(os.Stdout))
	}
	//
	if GetFlag(cmd, "table") {
		escapes := GetFlag(cmd, "ansi-escapes") && termio.IsTerminal(os.Stdout)
		writers = append(writers, report.NewTableWriter(os.Stdout, escapes))
	}
	//
	return append(writers, report.NewFileWriter(GetString(cmd, "output")))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().Uint("bits", sweep.MaxBits, "largest operand width to simulate")
	rootCmd.Flags().Uint("runs", sweep.MaxRuns, "number of random additions per width")
	rootCmd.Flags().Uint64("seed", 0, "seed for operand generation (0 indicates seed from clock)")
	rootCmd.Flags().StringP("output", "o", report.DefaultFilename, "file to write average delays to")
	rootCmd.Flags().Bool("table", false, "print a summary table once complete")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress per-width console output")
	rootCmd.Flags().Bool("ansi-escapes", true, "specify whether to allow ANSI escapes or not (e.g. for colour tables)")
	rootCmd.PersistentFlags().Uint("gate-delay", adder.GateDelay, "delay charged per cycle")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "report debug logs")
}
