// Package logging provides structured logging for modalctl.
//
// This package wraps a zap logger with convenience functions for the events
// a modal controller goes through. Logging is silent unless enabled, so the
// terminal UI is never interleaved with log lines.
//
// # Log Levels
//
//   - Debug: state transitions, renderer rebuilds, focus trap and scope events
//   - Info: program lifecycle in the demo CLI
//   - Warn: recoverable problems such as an unreadable config file
//   - Error: failures that end a command
//
// # Configuration
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// With an empty level the MODALCTL_LOG_LEVEL environment variable is used.
// Output is written to stderr in console format:
//
//	2026-10-19T10:30:45.123+0200  DEBUG  Modal state changed
//	  mount_id=dlg
//	  state=open
package logging
