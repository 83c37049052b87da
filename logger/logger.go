// Package logger builds component loggers that prefix every line with a
// coloured component name.
package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// prefixFormatter writes a fixed prefix ahead of each formatted entry.
type prefixFormatter struct {
	prefix []byte
	next   logrus.Formatter
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	line, err := f.next.Format(e)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, f.prefix...), line...), nil
}

// New creates a logger for the named component writing to w. color is an
// ANSI colour escape applied to the name, or empty for none. level is a
// logrus level name such as "info" or "debug".
func New(name, color string, w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", name, err)
	}

	prefix := fmt.Sprintf("[%s] ", name)
	if color != "" {
		prefix = fmt.Sprintf("%s[%s]\033[0m ", color, name)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&prefixFormatter{
		prefix: []byte(prefix),
		next: &logrus.TextFormatter{
			DisableColors:   color == "",
			ForceColors:     color != "",
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})
	return l, nil
}
