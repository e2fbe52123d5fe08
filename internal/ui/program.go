package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunOnceModel is a Bubble Tea model that renders once and exits.
type RunOnceModel struct {
	content string
}

// NewRunOnceModel creates a model that will render the given content and exit
func NewRunOnceModel(content string) RunOnceModel {
	return RunOnceModel{content: content}
}

// Init implements tea.Model
func (m RunOnceModel) Init() tea.Cmd {
	// Immediately signal we're done after first render
	return tea.Quit
}

// Update implements tea.Model
func (m RunOnceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View implements tea.Model
func (m RunOnceModel) View() string {
	return m.content
}

// RenderOnce renders content using Bubble Tea's rendering engine and immediately exits.
func RenderOnce(w io.Writer, content string) error {
	if w == nil {
		w = os.Stdout
	}
	p := tea.NewProgram(NewRunOnceModel(content), tea.WithOutput(w), tea.WithInput(nil))
	_, err := p.Run()
	return err
}

// Printer writes styled blocks to a writer.
type Printer struct {
	out    io.Writer
	width  int
	height int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	width, height := GetTerminalSize()
	return &Printer{
		out:    w,
		width:  width,
		height: height,
	}
}

// SetSize overrides the detected terminal size
func (p *Printer) SetSize(width, height int) *Printer {
	p.width = width
	p.height = height
	return p
}

// Width returns the frame width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Height returns the frame height used by this printer
func (p *Printer) Height() int {
	return p.height
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a header box naming what is being shown
func (p *Printer) PrintHeader(title string, params [][2]string) {
	p.Println(RenderHeader(title, params, p.width))
}

// RenderHeader renders a header box with a title and key/value lines.
// params keep their order.
func RenderHeader(title string, params [][2]string, width int) string {
	titleLine := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		PaddingLeft(DefaultPadding).
		Render(strings.ToUpper(title))

	var paramLines []string
	keyStyle := lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(DefaultPadding)
	valueStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, kv := range params {
		paramLines = append(paramLines, keyStyle.Render(kv[0]+":")+" "+valueStyle.Render(kv[1]))
	}

	dividerWidth := max(width-6, 10) // Account for border and padding
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		RenderHorizontalDivider(dividerWidth, "─"),
		strings.Join(paramLines, "\n"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}
