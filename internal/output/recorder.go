package output

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Discard is a Sink that drops every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Info(string)    {}
func (discard) Warning(string) {}
func (discard) Error(string)   {}
func (discard) Print(string)   {}

// Level tags a recorded message.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelPlain   Level = "plain"
)

// Line is one recorded message with styling removed.
type Line struct {
	Level Level
	Text  string
}

// Recorder is an in-memory Sink for tests and non-interactive callers.
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(text string)    { r.add(LevelInfo, text) }
func (r *Recorder) Warning(text string) { r.add(LevelWarning, text) }
func (r *Recorder) Error(text string)   { r.add(LevelError, text) }
func (r *Recorder) Print(text string)   { r.add(LevelPlain, text) }

func (r *Recorder) add(level Level, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Level: level, Text: ansi.Strip(text)})
}

// Lines returns a copy of everything recorded so far.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

// Messages returns the text recorded at level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, line := range r.Lines() {
		if line.Level == level {
			out = append(out, line.Text)
		}
	}
	return out
}

// String joins all recorded text with newlines.
func (r *Recorder) String() string {
	lines := r.Lines()
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, line.Text)
	}
	return strings.Join(parts, "\n")
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
