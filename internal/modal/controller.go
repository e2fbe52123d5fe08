package modal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/modalctl/internal/focustrap"
	"github.com/muurk/modalctl/internal/logging"
)

// StateMsg asks the controller mounted at MountID to open or close.
type StateMsg struct {
	MountID string
	Open    bool
}

// Result is a snapshot of a controller.
type Result struct {
	Modal  *Modal
	Open   func()
	Close  func()
	IsOpen bool
}

// Controller owns the state of one modal and assembles its renderer.
type Controller struct {
	ctx      context.Context
	mountID  string
	opts     *Options
	resolver *Resolver
	state    *State
	trap     *focustrap.Trap
	asm      assembler
}

// New creates a controller mounted at mountID ("root" if empty). Ambient
// options are read from ctx (see WithConfig); opts may be nil.
func New(ctx context.Context, mountID string, opts *Options) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	if mountID == "" {
		mountID = DefaultMountID
	}

	c := &Controller{
		ctx:      ctx,
		mountID:  mountID,
		opts:     opts,
		resolver: NewResolver(nil),
	}
	cfg, _ := c.resolver.Resolve(ConfigFrom(ctx), opts)

	c.state = NewState(cfg.InitialValue)
	c.trap = focustrap.New(cfg.FocusTrap)
	c.state.OnChange(c.transition)
	if c.state.IsOpen() {
		c.trap.Activate()
		logging.LogFocusTrap(c.mountID, true, c.trap.Focused())
	}
	return c
}

// transition keeps the focus trap in lockstep with the dialog being in the
// tree: it is active exactly while the state is open.
func (c *Controller) transition(open bool) {
	logging.LogStateChange(c.mountID, open)
	if open {
		c.trap.Activate()
	} else {
		c.trap.Deactivate()
	}
	logging.LogFocusTrap(c.mountID, open, c.trap.Focused())
}

// config resolves the current configuration and swaps the focus trap when
// its options changed.
func (c *Controller) config() Config {
	cfg, changed := c.resolver.Resolve(ConfigFrom(c.ctx), c.opts)
	if changed && cfg.FocusTrap != c.trap.Options() {
		active := c.trap.Active()
		c.trap.Deactivate()
		c.trap = focustrap.New(cfg.FocusTrap)
		if active {
			c.trap.Activate()
		}
	}
	return cfg
}

// SetOptions replaces the per-controller options. The state keeps its
// current value regardless of the new InitialValue.
func (c *Controller) SetOptions(opts *Options) {
	c.opts = opts
}

// SetContext replaces the context ambient options are read from.
func (c *Controller) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.ctx = ctx
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.config()
}

// MountID returns the mount identifier.
func (c *Controller) MountID() string { return c.mountID }

// Open opens the modal.
func (c *Controller) Open() { c.state.Open() }

// Close closes the modal.
func (c *Controller) Close() { c.state.Close() }

// IsOpen reports whether the modal is open.
func (c *Controller) IsOpen() bool { return c.state.IsOpen() }

// Focused returns the ID focused by the focus trap, or "" when closed.
func (c *Controller) Focused() string { return c.trap.Focused() }

// OpenCmd returns a command that opens this controller through Update.
func (c *Controller) OpenCmd() tea.Cmd {
	return stateCmd(c.mountID, true)
}

// CloseCmd returns a command that closes this controller through Update.
func (c *Controller) CloseCmd() tea.Cmd {
	return stateCmd(c.mountID, false)
}

func stateCmd(mountID string, open bool) tea.Cmd {
	return func() tea.Msg {
		return StateMsg{MountID: mountID, Open: open}
	}
}

// Modal returns the renderer for the current state and configuration.
// The same pointer is returned until an input changes.
func (c *Controller) Modal() *Modal {
	cfg := c.config()
	m, rebuilt := c.asm.get(deps{
		components:    Select(cfg.Components),
		owner:         c.state,
		mountID:       c.mountID,
		focusTrap:     cfg.FocusTrap,
		isOpen:        c.state.IsOpen(),
		preventScroll: cfg.PreventScroll,
	})
	if rebuilt {
		logging.LogAssemblerRebuild(c.mountID, c.asm.builds, m.IsOpen())
	}
	return m
}

// Result returns the modal renderer together with the state accessors.
func (c *Controller) Result() Result {
	return Result{
		Modal:  c.Modal(),
		Open:   c.state.OpenFunc(),
		Close:  c.state.CloseFunc(),
		IsOpen: c.state.IsOpen(),
	}
}

// Update handles messages addressed to the controller. captured reports
// that msg must not reach the background: while open, keys are contained
// by the focus trap and, with PreventScroll, scrolling is locked.
func (c *Controller) Update(msg tea.Msg) (captured bool, cmd tea.Cmd) {
	if m, ok := msg.(StateMsg); ok {
		if m.MountID != c.mountID {
			return false, nil
		}
		if m.Open {
			c.Open()
		} else {
			c.Close()
		}
		return true, nil
	}

	if !c.state.IsOpen() {
		return false, nil
	}
	cfg := c.config()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, deactivate := c.trap.Handle(msg)
		if deactivate {
			c.Close()
			return true, nil
		}
		if handled {
			return true, nil
		}
		return cfg.PreventScroll && isScrollKey(msg), nil

	case tea.MouseMsg:
		return cfg.PreventScroll && isWheel(msg), nil
	}

	return false, nil
}

// isScrollKey checks if the key scrolls the background
func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

func isWheel(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
