package modal

import (
	"github.com/muurk/modalctl/internal/focustrap"
)

// DefaultMountID is used when a controller is created without a mount id.
const DefaultMountID = "root"

// Options configures a controller. Every field is optional at every source
// (built-in defaults, ambient scope, per-controller).
type Options struct {
	InitialValue  Setting[bool]
	PreventScroll Setting[bool]
	// FocusTrap is forwarded to the focus trap untouched.
	FocusTrap Setting[*focustrap.Options]
	// Components replaces the whole component set of lower sources when set.
	// Slots left nil inside it use the built-in defaults.
	Components Setting[Components]
}

// Config is the effective configuration of a controller. No field is unset.
type Config struct {
	InitialValue  bool
	PreventScroll bool
	FocusTrap     *focustrap.Options
	Components    Components
}

// emptyFocusTrap is shared so the resolved pointer stays identical across
// resolutions when nobody supplies focus trap options.
var emptyFocusTrap = &focustrap.Options{}

var builtinOptions = Options{
	InitialValue:  Set(false),
	PreventScroll: Set(false),
	FocusTrap:     Set(emptyFocusTrap),
	Components:    Set(Components{}),
}

// DefaultOptions returns a copy of the built-in baseline options.
func DefaultOptions() *Options {
	opts := builtinOptions
	return &opts
}

// Merge overlays the given sources in increasing precedence. nil sources
// are skipped. The result may still contain unset fields.
func Merge(sources ...*Options) Options {
	var out Options
	for _, src := range sources {
		if src == nil {
			continue
		}
		out.InitialValue = src.InitialValue.over(out.InitialValue)
		out.PreventScroll = src.PreventScroll.over(out.PreventScroll)
		out.FocusTrap = src.FocusTrap.over(out.FocusTrap)
		out.Components = src.Components.over(out.Components)
	}
	return out
}

// Resolve merges defaults < ambient < explicit into an effective Config.
// A nil defaults uses the built-in baseline. Anything still unset after the
// merge falls back to the built-in baseline as well.
func Resolve(defaults, ambient, explicit *Options) Config {
	if defaults == nil {
		defaults = &builtinOptions
	}
	merged := Merge(&builtinOptions, defaults, ambient, explicit)

	focusTrap := merged.FocusTrap.Or(emptyFocusTrap)
	if focusTrap == nil {
		focusTrap = emptyFocusTrap
	}

	return Config{
		InitialValue:  merged.InitialValue.Or(false),
		PreventScroll: merged.PreventScroll.Or(false),
		FocusTrap:     focusTrap,
		Components:    merged.Components.Or(Components{}),
	}
}

// Resolver caches the last resolved Config keyed on the identity of the
// ambient and explicit options. Mutating an Options value in place after it
// was resolved is not observed; pass a new pointer instead.
type Resolver struct {
	defaults *Options

	ambient  *Options
	explicit *Options
	config   Config
	valid    bool
}

// NewResolver creates a resolver over the given defaults (nil for the
// built-in baseline).
func NewResolver(defaults *Options) *Resolver {
	return &Resolver{defaults: defaults}
}

// Resolve returns the effective Config and whether it was recomputed.
func (r *Resolver) Resolve(ambient, explicit *Options) (Config, bool) {
	if r.valid && r.ambient == ambient && r.explicit == explicit {
		return r.config, false
	}
	r.ambient = ambient
	r.explicit = explicit
	r.config = Resolve(r.defaults, ambient, explicit)
	r.valid = true
	return r.config, true
}
