package modal

import (
	"github.com/muurk/modalctl/internal/focustrap"
)

// Payload is what the caller supplies each time the modal is rendered.
type Payload struct {
	Title           string
	Description     string
	Children        *Node
	AdditionalProps any
}

// deps are the inputs a Modal is built from. A new Modal is built only
// when one of them changes.
type deps struct {
	components    Components
	owner         *State
	mountID       string
	focusTrap     *focustrap.Options
	isOpen        bool
	preventScroll bool
}

func (d deps) equal(o deps) bool {
	return d.owner == o.owner &&
		d.mountID == o.mountID &&
		d.focusTrap == o.focusTrap &&
		d.isOpen == o.isOpen &&
		d.preventScroll == o.preventScroll &&
		d.components.Equal(o.components)
}

// Modal renders the modal stack for a snapshot of controller state.
// Controllers hand out the same *Modal until one of its inputs changes,
// so hosts can compare pointers to skip work.
type Modal struct {
	d deps
}

// IsOpen reports the state the modal was assembled with.
func (m *Modal) IsOpen() bool {
	return m.d.isOpen
}

// MountID returns the mount identifier the modal targets.
func (m *Modal) MountID() string {
	return m.d.mountID
}

// Render builds the node tree for p. It returns nil while closed: the
// overlay and dialog do not exist in the tree at all.
func (m *Modal) Render(p Payload) *Node {
	if !m.d.isOpen {
		return nil
	}

	c := m.d.components
	overlay := c.Overlay.Overlay(OverlayProps{
		MountID:       m.d.mountID,
		PreventScroll: m.d.preventScroll,
	})
	dialog := c.Dialog.Dialog(DialogProps{
		Title:           p.Title,
		Description:     p.Description,
		Close:           m.d.owner.CloseFunc(),
		MountID:         m.d.mountID,
		PreventScroll:   m.d.preventScroll,
		FocusTrap:       m.d.focusTrap,
		AdditionalProps: p.AdditionalProps,
		Children:        p.Children,
	})
	return c.Wrapper.Wrap(WrapperProps{
		MountID:  m.d.mountID,
		Children: []*Node{overlay, dialog},
	})
}

// View renders the modal into a width x height frame. It returns "" while
// closed.
func (m *Modal) View(p Payload, width, height int) string {
	return Render(m.Render(p), Frame{Width: width, Height: height})
}

// Compose renders the modal on top of background. While closed the
// background is returned unchanged.
func (m *Modal) Compose(background string, p Payload, width, height int) string {
	n := m.Render(p)
	if n == nil {
		return background
	}
	return Render(n, Frame{Width: width, Height: height, Background: background})
}

// assembler hands out a cached Modal while its deps stay equal.
type assembler struct {
	modal  *Modal
	builds int
}

// get returns the cached Modal for d, or builds a new one. rebuilt reports
// whether a new Modal was built.
func (a *assembler) get(d deps) (m *Modal, rebuilt bool) {
	if a.modal != nil && a.modal.d.equal(d) {
		return a.modal, false
	}
	a.modal = &Modal{d: d}
	a.builds++
	return a.modal, true
}
