package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
)

type lineResult struct {
	text string
	err  error
}

// Input reads lines on a background goroutine so a pending read can be
// abandoned when the context ends.
type Input struct {
	prompt io.Writer
	cr     cancelreader.CancelReader
	lines  chan lineResult
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewInput starts reading r. Prompts and questions are written to prompt.
func NewInput(r io.Reader, prompt io.Writer) (*Input, error) {
	if r == nil {
		return nil, errors.New("shell: input reader is required")
	}
	if prompt == nil {
		prompt = io.Discard
	}
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	in := &Input{
		prompt: prompt,
		cr:     cr,
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}
	in.wg.Add(1)
	go in.loop()
	return in, nil
}

func (in *Input) loop() {
	defer in.wg.Done()
	defer close(in.lines)
	reader := bufio.NewReader(in.cr)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if !in.send(lineResult{text: strings.TrimRight(line, "\r\n")}) {
				return
			}
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				err = io.EOF
			}
			in.send(lineResult{err: err})
			return
		}
	}
}

func (in *Input) send(res lineResult) bool {
	select {
	case in.lines <- res:
		return true
	case <-in.done:
		return false
	}
}

// ReadLine waits for the next line. It returns io.EOF when input ends and
// ctx.Err() when ctx is done first.
func (in *Input) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// Ask writes question and returns the trimmed answer.
func (in *Input) Ask(ctx context.Context, question string) (string, error) {
	if _, err := io.WriteString(in.prompt, question); err != nil {
		return "", err
	}
	line, err := in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Close stops the reader goroutine. Readers that cannot be cancelled, such as
// in-memory ones, are left to finish on their own.
func (in *Input) Close() error {
	var err error
	in.once.Do(func() {
		close(in.done)
		if in.cr.Cancel() {
			in.wg.Wait()
		}
		err = in.cr.Close()
	})
	return err
}
