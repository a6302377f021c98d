package library

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned by a Prompter when the user backs out of a
// question.
var ErrCancelled = errors.New("cancelled")

// Prompter asks a follow-up question during a command.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Confirm asks question with a [y/N] suffix. Only y and yes confirm; an empty
// answer or "cancel" declines. End of input and a cancelled context surface
// as ErrCancelled.
func Confirm(ctx context.Context, p Prompter, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" [y/N]: ")
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return false, ErrCancelled
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// StreamPrompter reads answers line by line from In. It serves one-shot
// process commands; the shell brings its own Prompter.
type StreamPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (p *StreamPrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCancelled
	}
	if p.In == nil {
		return "", ErrCancelled
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	if p.Out != nil {
		if _, err := fmt.Fprint(p.Out, question); err != nil {
			return "", err
		}
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
