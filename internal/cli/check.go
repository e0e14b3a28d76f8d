// Package cli provides the check command.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/modern/internal/audit"
	"github.com/opencode-ai/modern/internal/logging"
)

var checkVerbose bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "list every finding")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the style resolver's contract",
	Long: `Evaluate the resolver over every variant, status and mode:

  disabled-alpha      disabled buttons halve text and background alpha and drop the shadow
  hover-shift         hovered and pressed fills move 0.05 / 0.10 toward white (dark) or black (light)
  purity              resolving twice yields identical records
  container-distinct  light and dark containers never share a background

Exits non-zero when any check finds a violation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// ErrCheckFailed is returned when at least one check finds a violation.
var ErrCheckFailed = errors.New("style contract check failed")

// runChecks evaluates the checks. Tests replace it.
var runChecks = audit.Run

func runCheck(out, progressOut io.Writer) error {
	logger := logging.Component("cli")

	step := startProgress(progressOut, "Checking styles")
	report := runChecks()
	if report.Passed() {
		step.Done()
	} else {
		step.Fail(nil)
	}

	for _, result := range report.Results {
		logger.Debug().
			Str("check", result.Check).
			Int("evaluated", result.Evaluated).
			Int("findings", len(result.Findings)).
			Msg("check finished")
	}

	if IsStructuredOutput() {
		if err := WriteOutput(out, report); err != nil {
			return err
		}
	} else {
		writeCheckReport(out, report)
	}

	if !report.Passed() {
		return ErrCheckFailed
	}
	return nil
}

func writeCheckReport(out io.Writer, report audit.Report) {
	tw := newTable(out, "CHECK", "EVALUATED", "FINDINGS", "PASSED")
	tw.SetColumnConfigs(alignRight(2, 3))
	for _, result := range report.Results {
		tw.AppendRow([]any{formatCheckResult(result), result.Evaluated, len(result.Findings), formatYesNo(result.Passed())})
	}
	tw.Render()

	for _, result := range report.Results {
		if result.Passed() {
			continue
		}
		limit := 5
		if checkVerbose || len(result.Findings) <= limit {
			limit = len(result.Findings)
		}
		fmt.Fprintf(out, "\n%s:\n", colorize(result.Check, colorRed))
		for _, finding := range result.Findings[:limit] {
			fmt.Fprintf(out, "  %s: %s\n", finding.Subject, finding.Detail)
		}
		if hidden := len(result.Findings) - limit; hidden > 0 {
			fmt.Fprintf(out, "  ... %d more (use --verbose)\n", hidden)
		}
	}
}
