package validate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/fifteentrace/internal/common"
	"github.com/eng618/fifteentrace/internal/trace"
	"github.com/eng618/fifteentrace/internal/verify"
)

// dumpLen bounds how much of a failing record's trace gets echoed to the
// console; full traces run to tens of kilobytes and swamp the failure list.
const dumpLen = 500

var inputPath string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Re-verify a generated dataset's recorded solutions",
	Long: `Re-verify every record in a dataset file.

Each line of --input is a JSONL record of the form {"text": "<trace>"}.
validate parses the recorded <input> board and <output> move list out of
each record's trace text, replays the moves, and confirms the result
matches the goal board (the same check datagen runs before writing a
record in the first place).

Examples:
  fifteentrace validate --input dataset.jsonl
  fifteentrace val -i dataset.jsonl --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Validating %s...", inputPath)

		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		defer f.Close()

		var record struct {
			Text string `json:"text"`
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		line, failures := 0, 0
		for scanner.Scan() {
			line++
			if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
				failures++
				common.Error("line %d: invalid JSON: %v", line, err)
				continue
			}

			b, moves, err := verify.ParseRecord(record.Text)
			if err != nil {
				failures++
				common.Error("line %d: %v", line, err)
				continue
			}

			if !verify.IsSolution(b, moves) {
				failures++
				common.Error("line %d: recorded solution does not reach the goal board", line)
				common.Verbose("line %d: trace (truncated):\n%s", line, trace.FromText(record.Text).Dump(dumpLen))
				continue
			}

			common.Verbose("line %d: ok", line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d records failed verification", failures, line)
		}

		common.Info("✓ All %d records verified", line)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&inputPath, "input", "i", "dataset.jsonl", "dataset JSONL file to validate")
}

// GetCommand returns the validate command for registration with root
func GetCommand() *cobra.Command {
	return validateCmd
}
