package library

import (
	"fmt"

	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/output"
)

func (l *Library) copyID(call *command.Call) error {
	b, err := l.lookup(call.Args.String("id"))
	if err != nil {
		return err
	}
	if err := l.deps.Clipboard(b.ID); err != nil {
		return fmt.Errorf("could not copy to the clipboard: %w", err)
	}
	call.Out.Info(fmt.Sprintf("Copied id %s of %q to the clipboard", b.ID, b.Title))
	return nil
}

func (l *Library) help(call *command.Call) error {
	if l.reg == nil {
		return fmt.Errorf("help is not available")
	}
	inShell := l.deps.InShell
	call.Out.Print(command.RenderHelp(l.reg, command.HelpOptions{
		Renderer: output.RendererFor(call.Out),
		Include: func(cmd *command.Command) bool {
			return inShell || !cmd.ShellOnly()
		},
	}))
	return nil
}

func (l *Library) version(call *command.Call) error {
	call.Out.Print(fmt.Sprintf("%s %s", l.deps.AppName, l.deps.Version))
	return nil
}

func (l *Library) clear(*command.Call) error {
	if l.deps.ClearScreen != nil {
		l.deps.ClearScreen()
	}
	return nil
}

func (l *Library) exit(*command.Call) error {
	return command.ErrQuit
}
