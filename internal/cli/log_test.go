package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("solved") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("sector placed") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("sector placed") }, true},
		{"warn at error", log.ErrorLevel, func(l *log.Logger) { l.Warn("cache miss") }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("Solved 3 sectors")

	stamp := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `)
	if !stamp.MatchString(buf.String()) {
		t.Errorf("line %q should start with an HH:MM:SS.cc timestamp", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.start = time.Now().Add(-1500 * time.Millisecond)

	prog.done("Solved 24 sectors")

	out := buf.String()
	if !strings.Contains(out, "Solved 24 sectors (1.5") {
		t.Errorf("output %q should carry the message and elapsed time", out)
	}
	if !strings.Contains(out, "s)") {
		t.Errorf("output %q should end the duration in seconds", out)
	}
}

func TestProgressRoundsToMillisecond(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered")

	if regexp.MustCompile(`µs|ns`).MatchString(buf.String()) {
		t.Errorf("output %q should not report below a millisecond", buf.String())
	}
}

func TestProgressSilentAboveInfo(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.WarnLevel)).done("Solved 24 sectors")
	if buf.Len() != 0 {
		t.Errorf("progress should log at info level, got %q", buf.String())
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(nil, logger)
	if ctx == nil {
		t.Fatal("withLogger(nil) returned a nil context")
	}
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}

func TestLoggerFromContextInner(t *testing.T) {
	outer := newLogger(&bytes.Buffer{}, log.InfoLevel)
	inner := newLogger(&bytes.Buffer{}, log.DebugLevel)

	ctx := withLogger(context.Background(), outer)
	ctx = withLogger(ctx, inner)
	if loggerFromContext(ctx) != inner {
		t.Error("the most recently attached logger should win")
	}
}
