package config

import (
	"github.com/muurk/modalctl/internal/focustrap"
	"github.com/muurk/modalctl/internal/modal"
)

// CurrentVersion is the config file format version this package writes.
const CurrentVersion = 1

// File represents the entire user configuration file.
type File struct {
	Version  int                    `yaml:"version"`
	Defaults *ModalPrefs            `yaml:"defaults,omitempty"` // Ambient options for every modal
	Mounts   map[string]*ModalPrefs `yaml:"mounts,omitempty"`   // Per-controller options keyed by mount id
}

// ModalPrefs is the YAML form of modal options. Absent keys stay unset so
// they fall through to the next lower source.
type ModalPrefs struct {
	InitialOpen   *bool              `yaml:"initial_open,omitempty"`
	PreventScroll *bool              `yaml:"prevent_scroll,omitempty"`
	FocusTrap     *focustrap.Options `yaml:"focus_trap,omitempty"`
}

// NewFile creates a File with default values.
func NewFile() *File {
	return &File{
		Version:  CurrentVersion,
		Defaults: &ModalPrefs{},
		Mounts:   make(map[string]*ModalPrefs),
	}
}

// ModalOptions converts the prefs into modal options. A nil receiver
// yields nil, which every resolver treats as "nothing set".
func (p *ModalPrefs) ModalOptions() *modal.Options {
	if p == nil {
		return nil
	}
	opts := &modal.Options{}
	if p.InitialOpen != nil {
		opts.InitialValue = modal.Set(*p.InitialOpen)
	}
	if p.PreventScroll != nil {
		opts.PreventScroll = modal.Set(*p.PreventScroll)
	}
	if p.FocusTrap != nil {
		opts.FocusTrap = modal.Set(p.FocusTrap)
	}
	return opts
}

// AmbientOptions returns the options for the outermost ambient scope.
func (f *File) AmbientOptions() *modal.Options {
	return f.Defaults.ModalOptions()
}

// MountOptions returns the per-controller options for mountID, or nil.
func (f *File) MountOptions(mountID string) *modal.Options {
	return f.Mounts[mountID].ModalOptions()
}

// EnsureMount returns the prefs for mountID, creating an empty entry if
// needed.
func (f *File) EnsureMount(mountID string) *ModalPrefs {
	if f.Mounts == nil {
		f.Mounts = make(map[string]*ModalPrefs)
	}
	p, ok := f.Mounts[mountID]
	if !ok {
		p = &ModalPrefs{}
		f.Mounts[mountID] = p
	}
	return p
}

// Bool returns a pointer to v, for filling optional prefs.
func Bool(v bool) *bool {
	return &v
}
