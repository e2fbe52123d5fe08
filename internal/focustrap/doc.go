// Package focustrap contains keyboard focus inside a modal while it is open.
//
// A Trap is driven entirely by its owner. The owner activates it when the
// contained subtree mounts and deactivates it when the subtree unmounts;
// the trap never changes its own activation state. While active, every key
// message is offered to Handle, which cycles focus with Tab/Shift+Tab,
// reports Esc as a deactivation request and swallows everything else unless
// the key is explicitly allowed through.
//
// Options are opaque to callers that only forward them (such as the modal
// controller). Only this package interprets them.
//
//	trap := focustrap.New(&focustrap.Options{
//	    Focusables:   []string{"confirm", "cancel"},
//	    InitialFocus: "cancel",
//	})
//	trap.Activate()
//	handled, deactivate := trap.Handle(keyMsg)
package focustrap
