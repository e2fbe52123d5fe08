// Package config manages the modalctl configuration file.
//
// The file is YAML and holds modal options at two levels: "defaults", which
// becomes the outermost ambient scope, and "mounts", per-controller options
// keyed by mount id. Keys that are absent stay unset, so they fall through
// to the built-in defaults instead of forcing false.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/modalctl/config.yaml or $HOME/.config/modalctl/config.yaml
//   - macOS: $HOME/.config/modalctl/config.yaml
//   - Windows: %LOCALAPPDATA%\modalctl\config.yaml
//
// # Example
//
//	version: 1
//	defaults:
//	  prevent_scroll: true
//	mounts:
//	  confirm:
//	    focus_trap:
//	      focusables: [confirm, cancel]
//	      initial_focus: cancel
//
// # Usage
//
//	f, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	ctx := modal.WithConfig(ctx, f.AmbientOptions())
//	ctrl := modal.New(ctx, "confirm", f.MountOptions("confirm"))
package config
