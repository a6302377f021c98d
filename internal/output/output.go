// Package output writes user-facing messages to the terminal.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Sink receives user-facing messages. Implementations never fail the caller.
type Sink interface {
	Info(text string)
	Warning(text string)
	Error(text string)
	// Print writes text without level styling (tables, help).
	Print(text string)
}

// Styled is implemented by sinks that render with a terminal-aware renderer.
type Styled interface {
	Renderer() *lipgloss.Renderer
}

// ColorMode selects when styling is applied.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always, never and the usual boolean spellings.
func ParseColorMode(value string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true", "yes":
		return ColorAlways, nil
	case "never", "off", "false", "no":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (allowed: auto, always, never)", value)
	}
}

// isTerminal reports whether w is attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Console styles messages the way the terminal supports: info green,
// warnings bold yellow, errors bold red.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	control  bool
	renderer *lipgloss.Renderer
	info     lipgloss.Style
	warning  lipgloss.Style
	err      lipgloss.Style
}

// NewConsole builds a console sink for w.
func NewConsole(w io.Writer, mode ColorMode) *Console {
	if w == nil {
		w = io.Discard
	}
	renderer := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	}
	return &Console{
		w:        w,
		control:  mode == ColorAlways || isTerminal(w),
		renderer: renderer,
		info:     renderer.NewStyle().Foreground(lipgloss.Color("2")),
		warning:  renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		err:      renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (c *Console) Renderer() *lipgloss.Renderer {
	return c.renderer
}

func (c *Console) Info(text string) {
	c.writeLine(c.info.Render(text))
}

func (c *Console) Warning(text string) {
	c.writeLine(c.warning.Render(text))
}

func (c *Console) Error(text string) {
	c.writeLine(c.err.Render(text))
}

func (c *Console) Print(text string) {
	c.writeLine(text)
}

// ClearScreen clears the terminal and homes the cursor. Color mode does not
// matter; it is a no-op only when the writer is not a terminal, so piped
// output stays free of escape sequences.
func (c *Console) ClearScreen() {
	if !c.control {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := termenv.NewOutput(c.w)
	out.ClearScreen()
}

// SetTitle sets the terminal window title. Like ClearScreen it does nothing
// when the writer is not a terminal.
func (c *Console) SetTitle(title string) {
	if !c.control {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	termenv.NewOutput(c.w).SetWindowTitle(title)
}

func (c *Console) writeLine(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, strings.TrimRight(text, "\n")+"\n")
}

// RendererFor returns the renderer of s, or a plain renderer when s is unstyled.
func RendererFor(s Sink) *lipgloss.Renderer {
	if styled, ok := s.(Styled); ok && styled.Renderer() != nil {
		return styled.Renderer()
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}
