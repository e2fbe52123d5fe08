package modal

import (
	"reflect"

	"github.com/muurk/modalctl/internal/focustrap"
)

// WrapperProps is passed to the wrapper component.
type WrapperProps struct {
	MountID  string
	Children []*Node
}

// OverlayProps is passed to the overlay component.
type OverlayProps struct {
	// MountID names the frame the modal is layered into.
	MountID       string
	PreventScroll bool
}

// DialogProps is passed to the dialog surface.
type DialogProps struct {
	Title       string
	Description string
	// Close closes the owning controller. Its identity is stable for the
	// lifetime of the controller.
	Close         func()
	MountID       string
	PreventScroll bool
	// FocusTrap is forwarded verbatim from the configuration.
	FocusTrap *focustrap.Options
	// AdditionalProps is caller data forwarded verbatim.
	AdditionalProps any
	Children        *Node
}

// WrapperComponent encloses the overlay and the dialog.
type WrapperComponent interface {
	Wrap(WrapperProps) *Node
}

// OverlayComponent draws the backdrop behind the dialog.
type OverlayComponent interface {
	Overlay(OverlayProps) *Node
}

// DialogComponent draws the dialog surface.
type DialogComponent interface {
	Dialog(DialogProps) *Node
}

// WrapperFunc adapts a function to WrapperComponent. Two WrapperFuncs made
// from the same function literal count as the same component; keep mutable
// state behind a pointer.
type WrapperFunc func(WrapperProps) *Node

func (f WrapperFunc) Wrap(p WrapperProps) *Node { return f(p) }

// OverlayFunc adapts a function to OverlayComponent.
type OverlayFunc func(OverlayProps) *Node

func (f OverlayFunc) Overlay(p OverlayProps) *Node { return f(p) }

// DialogFunc adapts a function to DialogComponent.
type DialogFunc func(DialogProps) *Node

func (f DialogFunc) Dialog(p DialogProps) *Node { return f(p) }

// Components is the set of components a controller renders. A nil slot
// means "use the default".
type Components struct {
	Wrapper WrapperComponent
	Overlay OverlayComponent
	Dialog  DialogComponent
}

// Select fills every nil slot of c with its default implementation. Slots
// are independent of each other.
func Select(c Components) Components {
	if c.Wrapper == nil {
		c.Wrapper = DefaultWrapper
	}
	if c.Overlay == nil {
		c.Overlay = DefaultOverlay
	}
	if c.Dialog == nil {
		c.Dialog = DefaultDialog
	}
	return c
}

// Equal reports whether both sets hold the same component in every slot.
func (c Components) Equal(o Components) bool {
	return sameComponent(c.Wrapper, o.Wrapper) &&
		sameComponent(c.Overlay, o.Overlay) &&
		sameComponent(c.Dialog, o.Dialog)
}

// sameComponent compares component values without panicking on
// uncomparable dynamic types. Reference kinds compare by pointer.
func sameComponent(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}
