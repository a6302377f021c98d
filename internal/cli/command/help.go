package command

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// HelpOptions controls RenderHelp.
type HelpOptions struct {
	Renderer *lipgloss.Renderer
	// Include filters commands; nil keeps every non-hidden command.
	Include func(*Command) bool
}

// RenderHelp lists each command as "name / alias  <params>" with its
// description on the following line.
func RenderHelp(reg *Registry, opts HelpOptions) string {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	nameStyle := renderer.NewStyle().Bold(true)
	paramStyle := renderer.NewStyle().Foreground(lipgloss.Color("6"))
	descStyle := renderer.NewStyle().Faint(true)

	var cmds []*Command
	width := 0
	for _, cmd := range reg.Commands() {
		if cmd.Hidden() || (opts.Include != nil && !opts.Include(cmd)) {
			continue
		}
		cmds = append(cmds, cmd)
		if w := runewidth.StringWidth(joinNames(cmd)); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, cmd := range cmds {
		names := runewidth.FillRight(joinNames(cmd), width)
		line := nameStyle.Render(names)
		if params := cmd.def.Params.Format(); params != "" {
			line += "  " + paramStyle.Render(params)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
		if desc := strings.TrimSpace(cmd.Description()); desc != "" {
			b.WriteString("    ")
			b.WriteString(descStyle.Render(desc))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinNames(cmd *Command) string {
	return strings.Join(cmd.names, " / ")
}
