package clean

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/fifteentrace/internal/common"
)

var target string

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove a generated dataset file",
	Long: `Remove a generated dataset file.

This is a destructive operation. Use with caution.

Examples:
  fifteentrace clean
  fifteentrace clean --output dataset.jsonl --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Cleaning %s...", target)

		if err := os.Remove(target); err != nil {
			if os.IsNotExist(err) {
				common.Verbose("%s does not exist, nothing to clean", target)
				return nil
			}
			return fmt.Errorf("clean failed: %w", err)
		}

		common.Info("✓ Removed %s", target)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&target, "output", "o", "dataset.jsonl", "dataset file to remove")
}

// GetCommand returns the clean command for registration with root
func GetCommand() *cobra.Command {
	return cleanCmd
}
