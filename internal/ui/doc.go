// Package ui holds the shared look of modalctl: the color palette and
// styles used by the default modal components, terminal size detection and
// helpers for one-shot output.
//
// The default dialog, overlay and wrapper in package modal draw with the
// styles defined here, so restyling them in one place changes every modal
// that does not override its components.
//
// # One-shot output
//
// Commands that print a single frame (such as "modalctl render") use a
// Printer:
//
//	p := ui.NewPrinter(os.Stdout).SetSize(80, 24)
//	p.PrintHeader("Modal snapshot", [][2]string{{"Mount", "dlg"}})
//	p.Println(frame)
//
// # Confirmation
//
// Confirm asks a yes/no question before destructive file operations such as
// overwriting an existing config file.
package ui
