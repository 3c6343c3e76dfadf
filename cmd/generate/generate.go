package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/fifteentrace/internal/common"
	"github.com/eng618/fifteentrace/internal/datagen"
	"github.com/eng618/fifteentrace/internal/generate"
)

var (
	startSeed    int64
	count        int
	reverseRate  float64
	reverseSteps int
	output       string
	overwrite    bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a dataset of annotated solving traces",
	Long: `Generate a dataset of annotated 15-puzzle solving traces.

For each seed in [--start-seed, --start-seed+--count), a solvable board is
produced, solved with the fixed 17-step plan, verified, and appended as one
JSONL record to --output.

Examples:
  fifteentrace generate --count 1000 --output dataset.jsonl
  fifteentrace gen -c 100 --start-seed 42 --verbose
  fifteentrace g -c 50 --reverse-rate 0.3 --reverse-steps 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Starting trace generation...")
		common.Verbose("Generating %d traces from seed %d (reverse-rate=%.2f, reverse-steps=%d, workers=%d)",
			count, startSeed, reverseRate, reverseSteps, common.Workers)

		cfg := datagen.Config{
			StartSeed:    startSeed,
			Count:        count,
			ReverseRate:  reverseRate,
			ReverseSteps: reverseSteps,
			Workers:      common.Workers,
			OutputPath:   output,
			Overwrite:    overwrite,
			ShowProgress: !common.VerboseEnabled,
		}

		if err := datagen.Run(cfg); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		common.Info("✓ Successfully generated %d traces to %s", count, output)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64VarP(&startSeed, "start-seed", "s", 0, "first seed to generate")
	generateCmd.Flags().IntVarP(&count, "count", "c", 50, "number of traces to generate")
	generateCmd.Flags().Float64Var(&reverseRate, "reverse-rate", generate.DefaultReverseRate, "probability of using the reverse-walk generator instead of shuffle")
	generateCmd.Flags().IntVar(&reverseSteps, "reverse-steps", generate.DefaultReverseSteps, "number of moves in the reverse walk")
	generateCmd.Flags().StringVarP(&output, "output", "o", "dataset.jsonl", "output JSONL file path")
	generateCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite the output file instead of appending")
}

// GetCommand returns the generate command for registration with root
func GetCommand() *cobra.Command {
	return generateCmd
}
