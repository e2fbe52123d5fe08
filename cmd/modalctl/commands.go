package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/modalctl/internal/config"
	"github.com/muurk/modalctl/internal/logging"
	"github.com/muurk/modalctl/internal/modal"
	"github.com/muurk/modalctl/internal/ui"
)

// Modal flags shared by the demo and render commands
var (
	mountID       string
	initialOpen   bool
	preventScroll bool
)

func addModalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mountID, "mount", modal.DefaultMountID, "Mount id of the modal")
	cmd.Flags().BoolVar(&initialOpen, "open", false, "Start with the modal open")
	cmd.Flags().BoolVar(&preventScroll, "prevent-scroll", false, "Lock background scrolling while open")
}

func init() {
	addModalFlags(rootCmd)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// modalSetup loads the config file and returns a context scoped to its
// defaults plus the explicit options for the mount: the mount section of
// the file, overridden by any flag the user actually set.
func modalSetup(cmd *cobra.Command) (context.Context, *modal.Options, error) {
	f, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx := modal.WithConfig(cmd.Context(), f.AmbientOptions())

	explicit := modal.Merge(f.MountOptions(mountID))
	if cmd.Flags().Changed("open") {
		explicit.InitialValue = modal.Set(initialOpen)
	}
	if cmd.Flags().Changed("prevent-scroll") {
		explicit.PreventScroll = modal.Set(preventScroll)
	}

	logging.Debug("Modal options prepared",
		zap.String("mount_id", mountID),
		zap.String("scope_id", modal.ScopeID(ctx)),
		zap.Bool("config_file", config.Exists(configPath)),
	)
	return ctx, &explicit, nil
}

// renderCmd prints a single frame of an open modal
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a snapshot of an open modal",
	Long: `Render the modal stack once and print it.

The modal is forced open so the overlay and dialog are always part of the
snapshot. Configuration is resolved the same way as in the demo.`,
	Example: `  # Render with the default size
  modalctl render --title "Delete item?" --body "This cannot be undone."

  # Render a specific mount from the config file
  modalctl render --mount confirm --width 60 --height 16`,
	RunE: runRender,
}

var (
	renderTitle       string
	renderDescription string
	renderBody        string
	renderWidth       int
	renderHeight      int
)

func init() {
	addModalFlags(renderCmd)
	renderCmd.Flags().StringVar(&renderTitle, "title", "Modal", "Dialog title")
	renderCmd.Flags().StringVar(&renderDescription, "description", "", "Dialog description")
	renderCmd.Flags().StringVar(&renderBody, "body", "Hello from modalctl.", "Dialog body text")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Frame width (default: terminal width)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Frame height (default: terminal height)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, explicit, err := modalSetup(cmd)
	if err != nil {
		return err
	}

	ctrl := modal.New(ctx, mountID, explicit)
	ctrl.Open()
	cfg := ctrl.Config()

	p := ui.NewPrinter(cmd.OutOrStdout())
	if renderWidth > 0 || renderHeight > 0 {
		p.SetSize(max(renderWidth, ui.MinTerminalWidth), max(renderHeight, 8))
	}

	p.PrintHeader("Modal snapshot", [][2]string{
		{"Mount", ctrl.MountID()},
		{"Prevent scroll", fmt.Sprint(cfg.PreventScroll)},
		{"Focus", orNone(ctrl.Focused())},
	})
	p.Println(ctrl.Modal().View(modal.Payload{
		Title:       renderTitle,
		Description: renderDescription,
		Children:    modal.Text(renderBody),
	}, p.Width(), p.Height()))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the modalctl config file",
}

var forceInit bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.Exists(configPath) && !forceInit {
			if !ui.Confirm(os.Stdin, cmd.OutOrStdout(), "Config file exists", []string{
				"The existing file will be replaced with the example configuration",
			}) {
				return nil
			}
		}

		if _, err := config.CreateDefaultConfig(configPath); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		path, err := displayPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite without asking")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config file contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := yaml.Marshal(f)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := displayPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func displayPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
