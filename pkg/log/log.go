package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing text formatted entries to stderr
// at info level.
func New() Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return l
}

// NewWithLevel returns a Logger writing to w, filtering out
// anything below level ("debug", "info", "error"...).
func NewWithLevel(w io.Writer, level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return l, nil
}
