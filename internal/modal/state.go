package modal

// State is the open/closed flag of one controller.
type State struct {
	open      bool
	openFn    func()
	closeFn   func()
	listeners []func(open bool)
}

// NewState creates a state with the given initial value.
func NewState(initial bool) *State {
	s := &State{open: initial}
	s.openFn = func() { s.set(true) }
	s.closeFn = func() { s.set(false) }
	return s
}

// Open marks the state open. Idempotent.
func (s *State) Open() { s.set(true) }

// Close marks the state closed. Idempotent.
func (s *State) Close() { s.set(false) }

// IsOpen returns the current value.
func (s *State) IsOpen() bool { return s.open }

// OpenFunc returns a func that opens this state. The same func is returned
// on every call.
func (s *State) OpenFunc() func() { return s.openFn }

// CloseFunc returns a func that closes this state. The same func is
// returned on every call.
func (s *State) CloseFunc() func() { return s.closeFn }

// OnChange registers fn to be called after every transition. Calls that
// leave the value unchanged do not notify.
func (s *State) OnChange(fn func(open bool)) {
	s.listeners = append(s.listeners, fn)
}

func (s *State) set(open bool) {
	if s.open == open {
		return
	}
	s.open = open
	for _, fn := range s.listeners {
		fn(open)
	}
}
