// Package clilog configures the logrus logger shared across the toon
// CLI's commands, grounded on the teacher's cli/cmd/config.go logrus
// usage (a package-level logger configured once at startup, never
// touched by the library core itself).
package clilog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger writing text-formatted entries to stderr
// at the given level name ("debug", "info", "warn", "error"; an
// unrecognized or empty name falls back to "info").
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	return l
}
