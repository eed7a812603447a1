package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// spinnerFrames is a quarter-filled circle turning clockwise.
var spinnerFrames = []string{"◴", "◷", "◶", "◵"}

const spinnerTick = 120 * time.Millisecond

// stage is a pipeline step that shows a spinner while it runs.
type stage int

const (
	stageNone stage = iota
	stageLayout
	stageRender
	stageVisualize
)

// message returns the spinner text for st. subject names the figure or
// scene being worked on and may be empty.
func (st stage) message(subject string) string {
	var verb, prep string
	switch st {
	case stageLayout:
		verb, prep = "Solving layout", " for "
	case stageRender:
		verb, prep = "Rendering", " "
	case stageVisualize:
		verb, prep = "Drawing", " "
	default:
		verb, prep = "Working", " on "
	}
	if subject == "" {
		return verb + "..."
	}
	return verb + prep + subject + "..."
}

// failure returns the line printed when st fails.
func (st stage) failure() string {
	switch st {
	case stageLayout:
		return "Layout failed"
	case stageRender:
		return "Render failed"
	case stageVisualize:
		return "Visualization failed"
	}
	return "Failed"
}

// figureSubject names a figure for a stage message: its title, else the
// base name of the file it came from.
func figureSubject(title, path string) string {
	if title != "" {
		return title
	}
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// Spinner animates a one-line status on stderr until stopped or until its
// context is cancelled.
type Spinner struct {
	out     io.Writer
	message string
	stage   stage
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
}

func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		out:     os.Stderr,
		message: message,
		parent:  ctx,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// startStage starts a spinner for st on ctx.
func startStage(ctx context.Context, st stage, subject string) *Spinner {
	s := newSpinnerWithContext(ctx, st.message(subject))
	s.stage = st
	s.Start()
	return s
}

// Start begins the animation. The first frame is drawn immediately.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerTick)
		defer ticker.Stop()

		for i := 0; ; i++ {
			s.draw(spinnerFrames[i%len(spinnerFrames)])
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
}

// Stop halts the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
}

// StopWithSuccess stops the spinner and prints message as a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints message as an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Fail stops the spinner with its stage's failure line.
func (s *Spinner) Fail() {
	s.StopWithError(s.stage.failure())
}

// Cancelled reports whether the caller's context ended. A plain Stop does
// not count.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
