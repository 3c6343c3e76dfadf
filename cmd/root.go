// Package cmd wires the CLI's subcommands: generate, validate, and clean.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/fifteentrace/cmd/clean"
	"github.com/eng618/fifteentrace/cmd/generate"
	"github.com/eng618/fifteentrace/cmd/validate"
	"github.com/eng618/fifteentrace/internal/common"
)

var (
	verbose    bool
	workers    string
	workingDir string

	// WorkersCount is the parsed --workers value. Subcommands read the same
	// value from common.Workers.
	WorkersCount int
)

var rootCmd = &cobra.Command{
	Use:   "fifteentrace",
	Short: "Generate annotated 15-puzzle solving traces for model training",
	Long: `fifteentrace generates solvable 15-puzzle boards and solves each one with
a fixed, rule-based plan, emitting a fully annotated reasoning trace for
every decision the solver makes.

It provides commands for:
  - Generating a dataset of traces (generate)
  - Re-verifying an existing dataset's recorded solutions (validate)
  - Removing a generated dataset file (clean)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Workers = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and runs it. Called by
// main.main(); only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output, echoing traces as they're generated when --workers is 1")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for dataset output paths (default: current directory)")

	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(clean.GetCommand())
}

// parseWorkers accepts "full" -> NumCPU(), "half" -> NumCPU()/2, or an
// integer string.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
