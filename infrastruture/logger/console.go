// Package logger provides a prefixed, colored console logger.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/maze-world-api/config"
	"github.com/beka-birhanu/maze-world-api/service/i"
)

// ConsoleLogger writes leveled, color-prefixed lines to a single writer.
// Implements i.Logger.
type ConsoleLogger struct {
	prefix string
	color  string
	logger *log.Logger
}

// New creates a console logger with the given subsystem prefix and color.
func New(prefix, color string, out io.Writer) (i.Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}

	return &ConsoleLogger{
		prefix: prefix,
		color:  color,
		logger: log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *ConsoleLogger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *ConsoleLogger) print(level, msg string) {
	l.logger.Print(fmt.Sprintf("%s[%s] [%s]%s %s", l.color, l.prefix, level, config.ColorReset, msg))
}
