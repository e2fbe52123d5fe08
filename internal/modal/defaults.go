package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/modalctl/internal/ui"
)

// Default components. They are exported so a caller can override one slot
// and delegate to the others.
var (
	DefaultWrapper WrapperComponent = defaultWrapper{}
	DefaultOverlay OverlayComponent = defaultOverlay{}
	DefaultDialog  DialogComponent  = defaultDialog{}
)

type defaultWrapper struct{}

// Wrap stacks its children: the first child is the base layer and every
// following child is centered on top of it.
func (defaultWrapper) Wrap(p WrapperProps) *Node {
	return &Node{
		Kind:     KindWrapper,
		Props:    p,
		Children: p.Children,
		Draw: func(f Frame, children []string) string {
			if len(children) == 0 {
				return ""
			}
			out := children[0]
			for _, c := range children[1:] {
				out = Layer(out, c, f.Width, f.Height)
			}
			return out
		},
	}
}

type defaultOverlay struct{}

// Overlay dims the host frame behind the dialog, or fills the frame with a
// backdrop pattern when there is nothing behind it.
func (defaultOverlay) Overlay(p OverlayProps) *Node {
	return &Node{
		Kind:  KindOverlay,
		Props: p,
		Draw: func(f Frame, _ []string) string {
			if f.Background == "" {
				return lipgloss.Place(
					f.Width, f.Height,
					lipgloss.Center, lipgloss.Center,
					"",
					lipgloss.WithWhitespaceChars(ui.BackdropChar),
					lipgloss.WithWhitespaceForeground(ui.BackdropColor),
				)
			}
			return dim(f.Background, f.Width, f.Height)
		},
	}
}

// dim strips styling from bg and repaints it in the backdrop color, padded
// or clipped to the frame.
func dim(bg string, width, height int) string {
	lines := strings.Split(ansi.Strip(bg), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			line = ansi.Truncate(line, width, "")
		case w < width:
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = ui.BackdropStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}

type defaultDialog struct{}

// Dialog draws a bordered box with title, description, children and a
// close hint.
func (defaultDialog) Dialog(p DialogProps) *Node {
	children := []*Node{}
	if p.Children != nil {
		children = append(children, p.Children)
	}
	return &Node{
		Kind:     KindDialog,
		Props:    p,
		Children: children,
		Draw: func(f Frame, body []string) string {
			width := ui.DialogWidth(f.Width)
			inner := width - 2 - 2*ui.DefaultPadding

			var sections []string
			if p.Title != "" {
				sections = append(sections, ui.DialogTitleStyle.Render(p.Title))
			}
			if p.Description != "" {
				sections = append(sections, ui.DialogDescriptionStyle.Width(inner).Render(p.Description))
			}
			if len(sections) > 0 && len(body) > 0 {
				sections = append(sections, "")
			}
			for _, b := range body {
				sections = append(sections, ui.DialogBodyStyle.Width(inner).Render(b))
			}
			sections = append(sections, "", ui.DialogHintStyle.Render("esc close"))

			content := lipgloss.JoinVertical(lipgloss.Left, sections...)
			return ui.DialogBoxStyle(width).Render(content)
		},
	}
}
