// Package modal is an open/close and render controller for modal dialogs in
// Bubble Tea programs.
//
// A Controller owns a boolean state and assembles a Modal: a renderer that
// composes a wrapper, an overlay (backdrop) and a dialog surface into a
// node tree while open, and renders nothing while closed.
//
// # Configuration
//
// Options come from three sources, in increasing precedence:
//
//  1. built-in defaults (DefaultOptions)
//  2. ambient options of the innermost scope (WithConfig / Provider)
//  3. per-controller options passed to New
//
// Every field is a Setting, so an explicit false overrides a lower true.
// Components is merged as a whole: a source that sets it replaces the
// lower source's set, and nil slots fall back to DefaultWrapper,
// DefaultOverlay and DefaultDialog.
//
// # Usage
//
//	ctx := modal.WithConfig(context.Background(), &modal.Options{
//	    PreventScroll: modal.Set(true),
//	})
//	ctrl := modal.New(ctx, "confirm", nil)
//
//	// In Update():
//	if captured, cmd := ctrl.Update(msg); captured {
//	    return m, cmd
//	}
//
//	// In View():
//	return ctrl.Modal().Compose(background, modal.Payload{
//	    Title:    "Delete item?",
//	    Children: modal.Text("This cannot be undone."),
//	}, width, height)
//
// # Identity
//
// Controller.Modal returns the same *Modal until the selected components,
// the state owner, the mount id, the focus trap options, the open flag or
// PreventScroll changes. The close func handed to dialogs is created once
// per controller.
package modal
