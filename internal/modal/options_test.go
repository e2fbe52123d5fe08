package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/modalctl/internal/focustrap"
)

type stubOverlay struct{ name string }

func (s stubOverlay) Overlay(p OverlayProps) *Node {
	return &Node{Kind: KindOverlay, Props: p, Text: s.name}
}

type stubDialog struct{ name string }

func (s stubDialog) Dialog(p DialogProps) *Node {
	return &Node{Kind: KindDialog, Props: p, Text: s.name}
}

type stubWrapper struct{ name string }

func (s stubWrapper) Wrap(p WrapperProps) *Node {
	return &Node{Kind: KindWrapper, Props: p, Children: p.Children}
}

func TestResolveWithoutSources(t *testing.T) {
	cfg := Resolve(nil, nil, nil)

	assert.False(t, cfg.InitialValue)
	assert.False(t, cfg.PreventScroll)
	require.NotNil(t, cfg.FocusTrap)
	assert.Same(t, emptyFocusTrap, cfg.FocusTrap)
	assert.Equal(t, Components{}, cfg.Components)
}

func TestResolvePrecedence(t *testing.T) {
	ambientTrap := &focustrap.Options{InitialFocus: "a"}
	explicitTrap := &focustrap.Options{InitialFocus: "b"}

	tests := []struct {
		name          string
		defaults      *Options
		ambient       *Options
		explicit      *Options
		wantInitial   bool
		wantPrevent   bool
		wantFocusTrap *focustrap.Options
	}{
		{
			name:          "defaults only",
			defaults:      &Options{PreventScroll: Set(true)},
			wantPrevent:   true,
			wantFocusTrap: emptyFocusTrap,
		},
		{
			name:          "ambient overrides defaults",
			defaults:      &Options{PreventScroll: Set(true)},
			ambient:       &Options{PreventScroll: Set(false), FocusTrap: Set(ambientTrap)},
			wantPrevent:   false,
			wantFocusTrap: ambientTrap,
		},
		{
			name:          "explicit overrides ambient",
			ambient:       &Options{InitialValue: Set(true), FocusTrap: Set(ambientTrap)},
			explicit:      &Options{InitialValue: Set(false), FocusTrap: Set(explicitTrap)},
			wantInitial:   false,
			wantFocusTrap: explicitTrap,
		},
		{
			name:          "unset explicit falls through to ambient",
			ambient:       &Options{InitialValue: Set(true), PreventScroll: Set(true)},
			explicit:      &Options{},
			wantInitial:   true,
			wantPrevent:   true,
			wantFocusTrap: emptyFocusTrap,
		},
		{
			name:          "fields resolve independently",
			ambient:       &Options{InitialValue: Set(true)},
			explicit:      &Options{PreventScroll: Set(true)},
			wantInitial:   true,
			wantPrevent:   true,
			wantFocusTrap: emptyFocusTrap,
		},
		{
			name:          "explicit nil focus trap falls back to empty",
			explicit:      &Options{FocusTrap: Set[*focustrap.Options](nil)},
			wantFocusTrap: emptyFocusTrap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Resolve(tt.defaults, tt.ambient, tt.explicit)
			assert.Equal(t, tt.wantInitial, cfg.InitialValue)
			assert.Equal(t, tt.wantPrevent, cfg.PreventScroll)
			assert.Same(t, tt.wantFocusTrap, cfg.FocusTrap)
		})
	}
}

func TestResolveComponentsReplacedAsWhole(t *testing.T) {
	ambient := &Options{Components: Set(Components{Overlay: stubOverlay{"ambient"}})}
	explicit := &Options{Components: Set(Components{Dialog: stubDialog{"explicit"}})}

	cfg := Resolve(nil, ambient, explicit)

	assert.Nil(t, cfg.Components.Overlay, "explicit set must replace ambient set")
	assert.Equal(t, stubDialog{"explicit"}, cfg.Components.Dialog)

	selected := Select(cfg.Components)
	assert.Equal(t, DefaultOverlay, selected.Overlay)
	assert.Equal(t, DefaultWrapper, selected.Wrapper)
}

func TestResolveComponentsFallThroughWhenUnset(t *testing.T) {
	ambient := &Options{Components: Set(Components{Overlay: stubOverlay{"ambient"}})}
	explicit := &Options{InitialValue: Set(true)}

	cfg := Resolve(nil, ambient, explicit)
	assert.Equal(t, stubOverlay{"ambient"}, cfg.Components.Overlay)
}

func TestDefaultOptionsIsCopy(t *testing.T) {
	opts := DefaultOptions()
	opts.PreventScroll = Set(true)

	assert.False(t, DefaultOptions().PreventScroll.Or(true))
	assert.False(t, Resolve(nil, nil, nil).PreventScroll)
}

func TestResolverMemoizesOnIdentity(t *testing.T) {
	r := NewResolver(nil)
	ambient := &Options{PreventScroll: Set(true)}
	explicit := &Options{InitialValue: Set(true)}

	cfg, changed := r.Resolve(ambient, explicit)
	require.True(t, changed)
	assert.True(t, cfg.PreventScroll)
	assert.True(t, cfg.InitialValue)

	_, changed = r.Resolve(ambient, explicit)
	assert.False(t, changed)

	// In-place mutation is not observed until a new pointer arrives.
	ambient.PreventScroll = Set(false)
	cfg, changed = r.Resolve(ambient, explicit)
	assert.False(t, changed)
	assert.True(t, cfg.PreventScroll)

	cfg, changed = r.Resolve(&Options{PreventScroll: Set(false)}, explicit)
	assert.True(t, changed)
	assert.False(t, cfg.PreventScroll)
}

func TestSetting(t *testing.T) {
	var unset Setting[bool]
	assert.False(t, unset.IsSet())
	assert.True(t, unset.Or(true))

	set := Set(false)
	v, ok := set.Get()
	assert.True(t, ok)
	assert.False(t, v)
	assert.False(t, set.Or(true))
}
