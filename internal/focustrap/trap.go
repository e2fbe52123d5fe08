package focustrap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a Trap. The zero value traps every key, has nothing to
// focus and lets Esc request deactivation.
type Options struct {
	// Focusables lists focus target IDs in Tab order.
	Focusables []string `yaml:"focusables,omitempty"`
	// InitialFocus is focused on activation. Defaults to the first focusable.
	InitialFocus string `yaml:"initial_focus,omitempty"`
	// EscapeDeactivates controls whether Esc requests deactivation. nil means true.
	EscapeDeactivates *bool `yaml:"escape_deactivates,omitempty"`
	// ReturnFocusOnDeactivate restores the focus that was current before the
	// previous activation when the trap is activated again.
	ReturnFocusOnDeactivate bool `yaml:"return_focus_on_deactivate,omitempty"`
	// AllowOutsideKeys are key strings (as reported by tea.KeyMsg.String)
	// that pass through the trap to the background.
	AllowOutsideKeys []string `yaml:"allow_outside_keys,omitempty"`
}

func (o *Options) escapeDeactivates() bool {
	return o.EscapeDeactivates == nil || *o.EscapeDeactivates
}

// keyMap defines the bindings a trap reacts to
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Deactivate key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	Deactivate: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// Trap holds focus containment state for one modal.
type Trap struct {
	opts    *Options
	active  bool
	current int // index into opts.Focusables, -1 if nothing focused
	saved   int
}

// New creates an inactive trap. A nil opts behaves like the zero Options.
func New(opts *Options) *Trap {
	if opts == nil {
		opts = &Options{}
	}
	return &Trap{opts: opts, current: -1, saved: -1}
}

// Options returns the options the trap was created with.
func (t *Trap) Options() *Options {
	return t.opts
}

// Activate starts containing focus. Calling it on an active trap is a no-op.
func (t *Trap) Activate() {
	if t.active {
		return
	}
	t.active = true

	if t.opts.ReturnFocusOnDeactivate && t.saved >= 0 && t.saved < len(t.opts.Focusables) {
		t.current = t.saved
		return
	}

	t.current = -1
	if len(t.opts.Focusables) == 0 {
		return
	}
	t.current = 0
	if i := slices.Index(t.opts.Focusables, t.opts.InitialFocus); i >= 0 {
		t.current = i
	}
}

// Deactivate releases focus. Calling it on an inactive trap is a no-op.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	t.saved = t.current
	t.current = -1
}

// Active reports whether the trap currently contains focus.
func (t *Trap) Active() bool {
	return t.active
}

// Focused returns the ID of the focused target, or "" if none.
func (t *Trap) Focused() string {
	if !t.active || t.current < 0 || t.current >= len(t.opts.Focusables) {
		return ""
	}
	return t.opts.Focusables[t.current]
}

// Handle processes a key while the trap is active.
// handled reports whether the key must be kept from the background;
// deactivate reports that the user asked to leave the trap.
func (t *Trap) Handle(msg tea.KeyMsg) (handled bool, deactivate bool) {
	if !t.active {
		return false, false
	}

	switch {
	case key.Matches(msg, keys.Next):
		t.cycle(1)
		return true, false
	case key.Matches(msg, keys.Prev):
		t.cycle(-1)
		return true, false
	case key.Matches(msg, keys.Deactivate):
		if t.opts.escapeDeactivates() {
			return true, true
		}
		return true, false
	}

	if slices.Contains(t.opts.AllowOutsideKeys, msg.String()) {
		return false, false
	}
	return true, false
}

func (t *Trap) cycle(step int) {
	n := len(t.opts.Focusables)
	if n == 0 {
		return
	}
	if t.current < 0 {
		t.current = 0
		return
	}
	t.current = ((t.current+step)%n + n) % n
}

// Bindings returns the trap's key bindings for help views.
func Bindings() []key.Binding {
	return []key.Binding{keys.Next, keys.Prev, keys.Deactivate}
}
