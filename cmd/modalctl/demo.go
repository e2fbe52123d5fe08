package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/modalctl/internal/focustrap"
	"github.com/muurk/modalctl/internal/logging"
	"github.com/muurk/modalctl/internal/modal"
	"github.com/muurk/modalctl/internal/ui"
)

// demoKeyMap defines key bindings for the demo background
type demoKeyMap struct {
	Open   key.Binding
	Select key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Scroll, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Scroll, k.Quit},
		append([]key.Binding{k.Select}, focustrap.Bindings()...),
	}
}

var demoKeys = demoKeyMap{
	Open: key.NewBinding(
		key.WithKeys("o", "d"),
		key.WithHelp("o", "open dialog"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Focus targets inside the demo dialog
const (
	focusConfirm = "confirm"
	focusCancel  = "cancel"
)

// demoModel shows a scrollable list behind a confirmation modal
type demoModel struct {
	ctrl     *modal.Controller
	items    []string
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	status   string
}

func newDemoModel(ctrl *modal.Controller) demoModel {
	items := make([]string, 40)
	for i := range items {
		items[i] = fmt.Sprintf("item %02d", i+1)
	}

	width, height := ui.GetTerminalSize()
	m := demoModel{
		ctrl:     ctrl,
		items:    items,
		viewport: viewport.New(width, height-2),
		help:     help.New(),
		width:    width,
		height:   height,
		status:   "press o to open the dialog",
	}
	m.viewport.SetContent(strings.Join(items, "\n"))
	return m
}

// Init implements tea.Model
func (m demoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.viewport.Width = size.Width
		m.viewport.Height = max(size.Height-2, 1)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.ctrl.IsOpen() && key.Matches(keyMsg, demoKeys.Select) {
		return m.choose(), nil
	}

	// The controller sees everything first; captured input never reaches
	// the background.
	if captured, cmd := m.ctrl.Update(msg); captured {
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, demoKeys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, demoKeys.Open):
			return m, m.ctrl.OpenCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// choose acts on the focused dialog button
func (m demoModel) choose() demoModel {
	switch m.ctrl.Focused() {
	case focusConfirm:
		if len(m.items) > 0 {
			m.status = "removed " + m.items[0]
			m.items = m.items[1:]
			m.viewport.SetContent(strings.Join(m.items, "\n"))
		}
	default:
		m.status = "cancelled"
	}
	logging.Info("Dialog choice", zap.String("focused", m.ctrl.Focused()), zap.String("status", m.status))
	m.ctrl.Close()
	return m
}

// View implements tea.Model
func (m demoModel) View() string {
	background := lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		ui.DialogHintStyle.Render(m.status),
		m.help.View(demoKeys),
	)

	return m.ctrl.Modal().Compose(background, modal.Payload{
		Title:           "Remove first item?",
		Description:     fmt.Sprintf("%d items left", len(m.items)),
		Children:        modal.Text(m.buttons()),
		AdditionalProps: map[string]any{"items": len(m.items)},
	}, m.width, m.height)
}

func (m demoModel) buttons() string {
	render := func(id, label string) string {
		if m.ctrl.Focused() == id {
			return ui.FocusedStyle.Render(label)
		}
		return ui.UnfocusedStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render(focusConfirm, "Remove"),
		"  ",
		render(focusCancel, "Cancel"),
	)
}

// demoFocusTrap is used unless the config file sets focus trap options for
// the mount.
var demoFocusTrap = &focustrap.Options{
	Focusables:       []string{focusConfirm, focusCancel},
	InitialFocus:     focusCancel,
	AllowOutsideKeys: []string{"ctrl+c"},
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, explicit, err := modalSetup(cmd)
	if err != nil {
		return err
	}
	if !explicit.FocusTrap.IsSet() {
		explicit.FocusTrap = modal.Set(demoFocusTrap)
	}

	ctrl := modal.New(ctx, mountID, explicit)
	logging.Info("Starting demo",
		zap.String("mount_id", ctrl.MountID()),
		zap.Bool("open", ctrl.IsOpen()),
	)

	p := tea.NewProgram(newDemoModel(ctrl), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
