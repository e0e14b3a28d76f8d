// Package cli provides the init command.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/modern/internal/config"
)

var initForce bool

// configDirFunc returns the directory init writes to. Tests replace it.
var configDirFunc = defaultConfigDir

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long:  "Write a commented config.yaml to $XDG_CONFIG_HOME/modern and report how auto mode resolves in this terminal.",
	Args:  cobra.NoArgs,
	Annotations: map[string]string{
		ignoreConfigErrors: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			createConfigFile(),
			detectTerminal(),
		}
		if IsStructuredOutput() {
			if err := WriteOutput(cmd.OutOrStdout(), initOutput(results)); err != nil {
				return err
			}
		} else {
			writeInitResults(cmd.OutOrStdout(), results)
		}
		for _, r := range results {
			if r.status == "failed" {
				return fmt.Errorf("%s: %s", r.name, r.message)
			}
		}
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

// InitStep is the structured form of one init step.
type InitStep struct {
	Step   string `json:"step" yaml:"step"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail" yaml:"detail"`
}

func initOutput(results []initResult) []InitStep {
	steps := make([]InitStep, 0, len(results))
	for _, r := range results {
		steps = append(steps, InitStep{Step: r.name, Status: r.status, Detail: r.message})
	}
	return steps
}

const configTemplate = `# Modern Configuration File
#
# Values here are overridden by MODERN_* environment variables
# (e.g. MODERN_THEME_MODE=dark) and by command line flags.

theme:
  # light, dark, or auto (follow the terminal background)
  mode: auto

output:
  # text, json, or yaml
  format: text

logging:
  # trace, debug, info, warn, error
  level: warn
  # console or json
  format: console
`

func defaultConfigDir() string {
	return config.DefaultDir()
}

func createConfigFile() initResult {
	result := initResult{name: "Config file"}

	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = fmt.Sprintf("wrote %s", path)
	return result
}

func detectTerminal() initResult {
	result := initResult{name: "Terminal"}
	if !hasTTY() {
		result.status = "skipped"
		result.message = "not a terminal; auto mode resolves to light"
		return result
	}

	background := "light"
	if detectDark() {
		background = "dark"
	}
	result.status = "done"
	result.message = fmt.Sprintf("%s background, %s colors; auto mode resolves to %s",
		background, profileName(termenv.ColorProfile()), background)
	return result
}

func profileName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "true"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "no"
	}
}

func writeInitResults(out io.Writer, results []initResult) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := r.status
		switch r.status {
		case "done":
			status = colorize(status, colorGreen)
		case "skipped":
			status = colorize(status, colorYellow)
		case "failed":
			status = colorize(status, colorRed)
		}
		rows = append(rows, []string{r.name, status, r.message})
	}
	writeTable(out, []string{"STEP", "STATUS", "DETAIL"}, rows)
}
