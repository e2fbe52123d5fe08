// Modalctl is a demo and inspection tool for the modal controller.
//
// It runs an interactive Bubble Tea demo of a modal dialog, prints one-shot
// snapshots of the rendered modal stack, and manages the configuration file
// that supplies ambient modal defaults.
//
// Usage:
//
//	modalctl [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'modalctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/modalctl/internal/logging"
	"github.com/muurk/modalctl/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "modalctl",
	Short: "Modal dialog controller demo",
	Long: `A demo and inspection tool for the Bubble Tea modal controller.

Options for every modal come from three sources, lowest precedence first:
built-in defaults, the "defaults" section of the config file, and the
per-mount section of the config file or command-line flags.

If no command is specified, the interactive demo will launch automatically.`,
	Version: version.Get().String(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runDemo,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: OS config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "modalctl %s\n", version.Get())
	},
}
