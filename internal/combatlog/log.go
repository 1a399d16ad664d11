// Package combatlog is the ordered feed of game events shown to the player.
package combatlog

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Log is append-only. Every line is also echoed to the debug logger, if set.
type Log struct {
	lines  []string
	logger logrus.FieldLogger
}

// New creates an empty log. logger may be nil.
func New(logger logrus.FieldLogger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Push(line string) {
	l.lines = append(l.lines, line)
	if l.logger != nil {
		l.logger.WithField("feed", "combat").Debug(line)
	}
}

func (l *Log) Pushf(format string, args ...any) {
	l.Push(fmt.Sprintf(format, args...))
}

// Lines returns every line, oldest first.
func (l *Log) Lines() []string {
	return l.lines
}

// Recent returns at most the last n lines, oldest first.
func (l *Log) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.lines)-n)
	return l.lines[start:]
}

func (l *Log) Len() int { return len(l.lines) }
