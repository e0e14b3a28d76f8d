package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/modern/internal/tui"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandIn(t, t.TempDir(), args...)
}

// executeCommandIn runs the root command with XDG_CONFIG_HOME set to xdg.
func executeCommandIn(t *testing.T, xdg string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("MODERN_NO_PROGRESS", "1")

	resetFlags(rootCmd)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		appConfig = nil
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestFormatError(t *testing.T) {
	err := &PreflightError{Message: "broken", Hint: "fix it", NextStep: "modern init"}
	assert.Equal(t, "Error: broken\nHint: fix it\nNext: modern init", formatError(err))
	assert.Equal(t, "Error: plain", formatError(errors.New("plain")))
}

func TestFlagsOverrideConfig(t *testing.T) {
	_, err := executeCommand(t, "palette", "--mode", "dark", "--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	cfg := GetConfig()
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("MODERN_OUTPUT_FORMAT", "json")
	out, err := executeCommand(t, "palette", "--mode", "light")
	require.NoError(t, err)

	var payload PaletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "light", payload.Mode)
}

func TestInvalidFlagValue(t *testing.T) {
	_, err := executeCommand(t, "palette", "--mode", "sepia")

	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, preflight.Message, "theme.mode")
}

func TestAutoModeWithoutTerminalIsLight(t *testing.T) {
	original := detectDark
	detectDark = func() bool { return true }
	t.Cleanup(func() { detectDark = original })

	out, err := executeCommand(t, "palette", "-o", "json")
	require.NoError(t, err)

	var payload PaletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "light", payload.Mode)
}

func TestUIRequiresTerminal(t *testing.T) {
	launched := false
	original := launchTUI
	launchTUI = func(tui.Config) error {
		launched = true
		return nil
	}
	t.Cleanup(func() { launchTUI = original })

	_, err := executeCommand(t, "ui", "--non-interactive")

	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, preflight.Message, "interactive terminal")
	assert.False(t, launched)
}

func TestDebugLoggingAcrossCommands(t *testing.T) {
	for _, args := range [][]string{
		{"resolve", "button", "--mode", "dark"},
		{"palette", "--mode", "auto"},
	} {
		_, err := executeCommand(t, append(args, "--log-level", "debug", "--log-format", "json")...)
		require.NoError(t, err, args)
		assert.Equal(t, "debug", GetConfig().Logging.Level)
	}
}
