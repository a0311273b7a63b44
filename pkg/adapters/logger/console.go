// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ideamans/go-l10n"

	"github.com/user/timelapse/pkg/console"
	"github.com/user/timelapse/pkg/ports"
)

// ConsoleLogger logs messages to the console with color support.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	out       io.Writer
	err       io.Writer
	colorOut  bool
	colorErr  bool
	mu        *sync.Mutex
}

// NewConsole creates a new console logger with the specified level.
// Color follows the process-wide console state set up by console.Init.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	return &ConsoleLogger{
		level:    level,
		out:      os.Stdout,
		err:      os.Stderr,
		colorOut: console.ColorEnabled(),
		colorErr: console.StderrColorEnabled(),
		mu:       &sync.Mutex{},
	}
}

// NewWriters creates an uncolored logger writing info and debug to out,
// warnings and errors to errOut.
func NewWriters(level ports.LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level: level,
		out:   out,
		err:   errOut,
		mu:    &sync.Mutex{},
	}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a new logger with the specified component name.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.component = component
	return &c
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	translated := l10n.F(msg, args...)

	w, color := l.out, l.colorOut
	if level >= ports.LevelWarn {
		w, color = l.err, l.colorErr
	}

	output := translated
	if l.component != "" {
		output = fmt.Sprintf("%s %s", console.Paint(color, console.Cyan, "["+l.component+"]"), translated)
	}

	switch level {
	case ports.LevelDebug:
		output = console.Paint(color, console.Gray, output)
	case ports.LevelWarn:
		output = console.Paint(color, console.Yellow, output)
	case ports.LevelError:
		output = console.Paint(color, console.Red, output)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, output)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
