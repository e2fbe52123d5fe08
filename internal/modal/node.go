package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Kind identifies what produced a Node.
type Kind int

const (
	KindContent Kind = iota
	KindWrapper
	KindOverlay
	KindDialog
)

func (k Kind) String() string {
	switch k {
	case KindWrapper:
		return "wrapper"
	case KindOverlay:
		return "overlay"
	case KindDialog:
		return "dialog"
	default:
		return "content"
	}
}

// Frame is the area a node is drawn into. Background holds whatever the
// host already rendered underneath the modal, if anything.
type Frame struct {
	Width      int
	Height     int
	Background string
}

// DrawFunc renders a node once its children have been rendered.
type DrawFunc func(f Frame, children []string) string

// Node is one element of a rendered modal tree. Trees are descriptions;
// nothing is drawn until Render is called.
type Node struct {
	Kind Kind
	// Props holds the props the producing component received
	// (WrapperProps, OverlayProps or DialogProps). nil for content.
	Props    any
	Children []*Node
	// Text is the content of a KindContent node without a Draw func.
	Text string
	Draw DrawFunc
}

// Text returns a content node with static text.
func Text(s string) *Node {
	return &Node{Kind: KindContent, Text: s}
}

// Content returns a content node joining the given nodes vertically.
func Content(children ...*Node) *Node {
	return &Node{Kind: KindContent, Children: children}
}

// Find returns every node of the given kind, depth first.
func (n *Node) Find(kind Kind) []*Node {
	if n == nil {
		return nil
	}
	var found []*Node
	if n.Kind == kind {
		found = append(found, n)
	}
	for _, c := range n.Children {
		found = append(found, c.Find(kind)...)
	}
	return found
}

// Render draws a node tree into a string. A nil node renders as "".
func Render(n *Node, f Frame) string {
	if n == nil {
		return ""
	}

	children := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		children = append(children, Render(c, f))
	}

	if n.Draw != nil {
		return n.Draw(f, children)
	}
	if n.Kind == KindContent && len(children) == 0 {
		return n.Text
	}
	if n.Text != "" {
		children = append([]string{n.Text}, children...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, children...)
}

// Layer draws top centered over base within a width x height area using
// ANSI-aware cell slicing, so styled backgrounds survive around the
// overlaid block.
func Layer(base, top string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	topLines := strings.Split(top, "\n")

	startY := max(0, (height-len(topLines))/2)
	for i, line := range topLines {
		y := startY + i
		if y >= len(baseLines) {
			break
		}
		baseLines[y] = spliceLine(baseLines[y], line, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine replaces the centered segment of bg with fg.
func spliceLine(bg, fg string, width int) string {
	fgWidth := ansi.StringWidth(fg)
	if fgWidth >= width {
		return ansi.Truncate(fg, width, "")
	}

	bgWidth := ansi.StringWidth(bg)
	if bgWidth < width {
		bg += strings.Repeat(" ", width-bgWidth)
	} else if bgWidth > width {
		bg = ansi.Truncate(bg, width, "")
	}

	left := (width - fgWidth) / 2
	right := ansi.TruncateLeft(bg, left+fgWidth, "")
	return ansi.Truncate(bg, left, "") + fg + right
}
