package focustrap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewNilOptions(t *testing.T) {
	trap := New(nil)
	if trap.Options() == nil {
		t.Fatal("New(nil).Options() should not be nil")
	}
	if trap.Active() {
		t.Error("new trap should be inactive")
	}
}

func TestActivateInitialFocus(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
		want string
	}{
		{"no focusables", &Options{}, ""},
		{"first by default", &Options{Focusables: []string{"a", "b"}}, "a"},
		{"initial focus", &Options{Focusables: []string{"a", "b"}, InitialFocus: "b"}, "b"},
		{"unknown initial focus", &Options{Focusables: []string{"a", "b"}, InitialFocus: "zz"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trap := New(tt.opts)
			trap.Activate()
			if got := trap.Focused(); got != tt.want {
				t.Errorf("Focused() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInactiveTrapIgnoresKeys(t *testing.T) {
	trap := New(&Options{Focusables: []string{"a"}})

	handled, deactivate := trap.Handle(tea.KeyMsg{Type: tea.KeyTab})
	if handled || deactivate {
		t.Errorf("Handle() on inactive trap = (%v, %v), want (false, false)", handled, deactivate)
	}
	if trap.Focused() != "" {
		t.Errorf("Focused() on inactive trap = %q, want empty", trap.Focused())
	}
}

func TestTabCycles(t *testing.T) {
	trap := New(&Options{Focusables: []string{"a", "b", "c"}})
	trap.Activate()

	want := []string{"b", "c", "a"}
	for i, w := range want {
		handled, _ := trap.Handle(tea.KeyMsg{Type: tea.KeyTab})
		if !handled {
			t.Fatalf("tab %d not handled", i)
		}
		if got := trap.Focused(); got != w {
			t.Errorf("after tab %d Focused() = %q, want %q", i, got, w)
		}
	}

	trap.Handle(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := trap.Focused(); got != "c" {
		t.Errorf("after shift+tab Focused() = %q, want %q", got, "c")
	}
}

func TestEscape(t *testing.T) {
	trap := New(&Options{})
	trap.Activate()

	handled, deactivate := trap.Handle(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled || !deactivate {
		t.Errorf("esc = (%v, %v), want (true, true)", handled, deactivate)
	}
	if !trap.Active() {
		t.Error("trap must not deactivate itself")
	}

	off := false
	trap = New(&Options{EscapeDeactivates: &off})
	trap.Activate()
	handled, deactivate = trap.Handle(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled || deactivate {
		t.Errorf("esc with EscapeDeactivates=false = (%v, %v), want (true, false)", handled, deactivate)
	}
}

func TestContainment(t *testing.T) {
	trap := New(&Options{AllowOutsideKeys: []string{"ctrl+c", "q"}})
	trap.Activate()

	if handled, _ := trap.Handle(keyRunes("x")); !handled {
		t.Error("x should be contained")
	}
	if handled, _ := trap.Handle(keyRunes("q")); handled {
		t.Error("q should pass through")
	}
	if handled, _ := trap.Handle(tea.KeyMsg{Type: tea.KeyCtrlC}); handled {
		t.Error("ctrl+c should pass through")
	}
}

func TestReturnFocusOnDeactivate(t *testing.T) {
	trap := New(&Options{Focusables: []string{"a", "b"}, ReturnFocusOnDeactivate: true})
	trap.Activate()
	trap.Handle(tea.KeyMsg{Type: tea.KeyTab})
	trap.Deactivate()

	if trap.Active() {
		t.Fatal("trap should be inactive")
	}

	trap.Activate()
	if got := trap.Focused(); got != "b" {
		t.Errorf("Focused() after reactivation = %q, want %q", got, "b")
	}

	plain := New(&Options{Focusables: []string{"a", "b"}})
	plain.Activate()
	plain.Handle(tea.KeyMsg{Type: tea.KeyTab})
	plain.Deactivate()
	plain.Activate()
	if got := plain.Focused(); got != "a" {
		t.Errorf("Focused() after reactivation without return focus = %q, want %q", got, "a")
	}
}

func TestActivateIdempotent(t *testing.T) {
	trap := New(&Options{Focusables: []string{"a", "b"}})
	trap.Activate()
	trap.Handle(tea.KeyMsg{Type: tea.KeyTab})
	trap.Activate()

	if got := trap.Focused(); got != "b" {
		t.Errorf("second Activate() reset focus to %q", got)
	}

	trap.Deactivate()
	trap.Deactivate()
	if trap.Active() {
		t.Error("trap should stay inactive")
	}
}

func TestBindings(t *testing.T) {
	if got := len(Bindings()); got != 3 {
		t.Errorf("len(Bindings()) = %d, want 3", got)
	}
}
